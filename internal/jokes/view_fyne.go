package jokes

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// FyneView is the window content: a joke row, an answer row and the buttons.
type FyneView struct {
	JokeLabel       *widget.Label
	PunchlineLabel  *widget.Label
	NextButton      *widget.Button
	StartOverButton *widget.Button

	content *fyne.Container
}

func NewFyneView(onNext, onStartOver func()) *FyneView {
	v := &FyneView{
		JokeLabel:       widget.NewLabel(""),
		PunchlineLabel:  widget.NewLabel(""),
		NextButton:      widget.NewButton("Next Joke", onNext),
		StartOverButton: widget.NewButton("Start Over", onStartOver),
	}
	v.JokeLabel.Wrapping = fyne.TextWrapWord
	v.PunchlineLabel.Wrapping = fyne.TextWrapWord

	jokeRow := container.NewBorder(nil, nil, widget.NewLabel("Joke:"), nil, v.JokeLabel)
	punchlineRow := container.NewBorder(nil, nil, widget.NewLabel("Answer:"), nil, v.PunchlineLabel)
	buttons := container.NewHBox(v.NextButton, layout.NewSpacer(), v.StartOverButton)

	v.content = container.NewVBox(jokeRow, punchlineRow, buttons)
	return v
}

func (v *FyneView) Content() fyne.CanvasObject {
	return v.content
}

func (v *FyneView) SetJoke(text string) {
	v.JokeLabel.SetText(text)
}

func (v *FyneView) SetPunchline(text string) {
	v.PunchlineLabel.SetText(text)
}

func (v *FyneView) Clear() {
	v.JokeLabel.SetText("")
	v.PunchlineLabel.SetText("")
}
