package jpfrontend

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/utterance"
)

// Diagnose renders u as a single line, breath groups separated by the pause
// marker, with accent phrase
// boundaries (/), the accent nucleus mora (*), and interrogative phrases (?)
// called out. Plain text unless the handle was built with
// WithColorDiagnostics(true), in which case boundaries and the accent
// nucleus are colorized.
func (j *JPreprocess) Diagnose(u utterance.Utterance) string {
	var b strings.Builder
	for i, bg := range u.BreathGroups {
		if i > 0 {
			b.WriteString(j.pause())
		}
		for apIdx, ap := range bg.AccentPhrases {
			if apIdx > 0 {
				b.WriteString(j.boundary())
			}
			b.WriteString(j.renderAccentPhrase(ap))
		}
	}
	return b.String()
}

func (j *JPreprocess) renderAccentPhrase(ap utterance.AccentPhrase) string {
	mora := 0
	var b strings.Builder
	for _, w := range ap.Words {
		for _, m := range w.Moras {
			mora++
			ph := m.Phoneme()
			spelling := ph.Consonant.String() + ph.Vowel.String()
			if ap.Accent != 0 && mora == ap.Accent {
				spelling = j.nucleus(spelling)
			}
			b.WriteString(spelling)
		}
	}
	if ap.IsInterrogative {
		b.WriteString(j.interrogative())
	}
	return b.String()
}

func (j *JPreprocess) pause() string {
	if j.colorDiagnostics {
		return color.Red.Sprint(" # ")
	}
	return " # "
}

func (j *JPreprocess) boundary() string {
	if j.colorDiagnostics {
		return color.Cyan.Sprint("/")
	}
	return "/"
}

func (j *JPreprocess) nucleus(spelling string) string {
	if j.colorDiagnostics {
		return color.Yellow.Sprint(spelling + "*")
	}
	return fmt.Sprintf("%s*", spelling)
}

func (j *JPreprocess) interrogative() string {
	if j.colorDiagnostics {
		return color.Green.Sprint("?")
	}
	return "?"
}
