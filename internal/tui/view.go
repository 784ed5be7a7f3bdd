package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/bmi/internal/bmi"
	"github.com/Makepad-fr/bmi/internal/model"
	"github.com/Makepad-fr/bmi/internal/ui"
)

func (m Model) View() string {
	mode := m.ctrl.Mode()

	var b strings.Builder
	b.WriteString(titleStyle.Render("BMI Calculator!"))
	b.WriteString("\n\n")
	b.WriteString(unitSwitch(mode))
	b.WriteString("\n\n")
	b.WriteString(m.fieldView(fieldHeight, "Height ("+mode.HeightUnit()+")", bmi.FieldHeight))
	b.WriteString("\n")
	b.WriteString(m.fieldView(fieldWeight, "Weight ("+mode.WeightUnit()+")", bmi.FieldWeight))

	if fl := m.flash.view(); fl != "" {
		b.WriteString("\n" + fl)
	}

	if res, ok := m.ctrl.Result(); ok {
		b.WriteString("\n")
		b.WriteString(resultPanel(res))
	}

	helpView := m.help.View(m.keys)
	content := b.String()

	if n := m.ctrl.HistoryLen(); n > 0 {
		used := lipgloss.Height(content) + lipgloss.Height(helpView) + 4
		listHeight := m.height - used - 2
		if listHeight < 3 {
			listHeight = 3
		}
		l := m.history
		l.SetSize(m.width-4, listHeight)
		content += "\n" + sectionStyle.Render("BMI History:") + "\n" + l.View()
	}

	return panelString(content + "\n\n" + helpView)
}

// unitSwitch renders the metric/imperial toggle with the active side bold.
func unitSwitch(mode model.UnitMode) string {
	metric, imperial := mutedStyle.Render("Metric"), mutedStyle.Render("Imperial")
	sw := switchOff
	if mode == model.Imperial {
		imperial = activeStyle.Render("Imperial")
		sw = switchOn
	} else {
		metric = activeStyle.Render("Metric")
	}
	return metric + " " + sw + " " + imperial
}

func (m Model) fieldView(i int, label string, f bmi.Field) string {
	box := inputStyle
	if i == m.focus {
		box = focusedInputStyle
	}
	out := labelStyle.Render(label) + "\n" + box.Render(m.inputs[i].View())
	if m.fieldErr == f {
		out += "\n" + errorStyle.Render("↑ "+fieldHint(f))
	}
	return out
}

func fieldHint(f bmi.Field) string {
	if f == bmi.FieldHeight {
		return "check height"
	}
	return "check weight"
}

func resultPanel(res bmi.Result) string {
	lines := []string{
		mutedStyle.Render("Your BMI:"),
		resultValueStyle.Render(res.Text),
		"",
		ui.Badge(res.Category()),
		"",
		lipgloss.NewStyle().Bold(true).Render("BMI Reference:"),
	}
	lines = append(lines, bmi.Legend()...)
	return resultStyle.Render(strings.Join(lines, "\n"))
}
