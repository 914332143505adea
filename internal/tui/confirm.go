package tui

type confirmModel struct {
	question string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(m.question + "\n\ny: yes    n: no")
}
