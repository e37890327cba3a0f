package interp

import (
	"strings"

	"github.com/finkrer/calc/internal/console"
)

const (
	helpBanner1      = "Укажите команду, для которой хотите посмотреть помощь"
	helpCommandsList = "Доступные команды: add, median, rand"
	helpExitHint     = "Чтобы выйти из режима помощи введите end"
	helpUnknown      = "Такой команды нет"

	helpAddDescription    = "Вычисляет сумму двух чисел"
	helpMedianDescription = "Вычисляет медиану списка чисел"
	helpRandDescription   = "Генерирует список случайных чисел"
)

// help prints the banner and commands list, then runs a sub-loop
// describing individual commands until "end" is read (spec.md 4.4.4).
func (l *Loop) help() error {
	if err := l.console.WriteLine(helpBanner1); err != nil {
		return err
	}
	if err := l.console.WriteLine(helpCommandsList); err != nil {
		return err
	}
	if err := l.console.WriteLine(helpExitHint); err != nil {
		return err
	}
	// On a live terminal, an extra blank line separates the banner from
	// whatever the user types next; scripted/piped input skips it, since
	// there's no screen to make more readable.
	if ic, ok := l.console.(console.Interactive); ok && ic.IsInteractive() {
		if err := l.console.WriteLine(""); err != nil {
			return err
		}
	}

	for {
		line, err := l.console.ReadLine()
		if err != nil {
			return err
		}
		cmd := strings.TrimSpace(line)

		switch cmd {
		case "end":
			return nil
		case "add":
			if err := l.console.WriteLine(helpAddDescription); err != nil {
				return err
			}
			if err := l.console.WriteLine(helpExitHint); err != nil {
				return err
			}
		case "median":
			if err := l.console.WriteLine(helpMedianDescription); err != nil {
				return err
			}
			if err := l.console.WriteLine(helpExitHint); err != nil {
				return err
			}
		case "rand":
			if err := l.console.WriteLine(helpRandDescription); err != nil {
				return err
			}
			if err := l.console.WriteLine(helpExitHint); err != nil {
				return err
			}
		default:
			if err := l.console.WriteLine(helpUnknown); err != nil {
				return err
			}
			if err := l.console.WriteLine(helpCommandsList); err != nil {
				return err
			}
			if err := l.console.WriteLine(helpExitHint); err != nil {
				return err
			}
		}
	}
}
