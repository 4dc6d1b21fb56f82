package fhpaint

import (
	"fmt"
	"strings"
)

var (
	_ Painter = (*Recorder)(nil) // assert interface conformance
	_ Painter = Tee(nil)
)

// Call is one recorded painter call.
type Call struct {
	Method string     // the name of the Painter method
	Props  Properties // for methods taking properties
	Path   PathData   // for DrawPath
	Text   string     // for InsertText
}

// String returns a short representation, such as
// "DrawPath M0 0 L1 1 Z" or "SetStyle {fill=solid}".
func (c Call) String() string {
	switch {
	case c.Path != nil:
		return c.Method + " " + c.Path.String()
	case c.Text != "":
		return fmt.Sprintf("%s %q", c.Method, c.Text)
	case c.Props.Len() != 0 || len(c.Props.Stops) != 0:
		return c.Method + " " + c.Props.String()
	}
	return c.Method
}

// Recorder is a painter storing the calls it receives,
// which is useful to inspect or replay a command stream.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) add(c Call) { r.Calls = append(r.Calls, c) }

func (r *Recorder) StartDocument() { r.add(Call{Method: "StartDocument"}) }
func (r *Recorder) EndDocument()   { r.add(Call{Method: "EndDocument"}) }

func (r *Recorder) StartPage(props Properties) {
	r.add(Call{Method: "StartPage", Props: props.Clone()})
}
func (r *Recorder) EndPage() { r.add(Call{Method: "EndPage"}) }

func (r *Recorder) OpenGroup(props Properties) {
	r.add(Call{Method: "OpenGroup", Props: props.Clone()})
}
func (r *Recorder) CloseGroup() { r.add(Call{Method: "CloseGroup"}) }

func (r *Recorder) SetStyle(props Properties) {
	r.add(Call{Method: "SetStyle", Props: props.Clone()})
}

func (r *Recorder) DrawPath(path PathData) {
	r.add(Call{Method: "DrawPath", Path: append(PathData{}, path...)})
}

func (r *Recorder) DrawRectangle(props Properties) {
	r.add(Call{Method: "DrawRectangle", Props: props.Clone()})
}

func (r *Recorder) DrawGraphicObject(props Properties) {
	r.add(Call{Method: "DrawGraphicObject", Props: props.Clone()})
}

func (r *Recorder) StartTextObject(props Properties) {
	r.add(Call{Method: "StartTextObject", Props: props.Clone()})
}
func (r *Recorder) EndTextObject() { r.add(Call{Method: "EndTextObject"}) }

func (r *Recorder) OpenParagraph(props Properties) {
	r.add(Call{Method: "OpenParagraph", Props: props.Clone()})
}
func (r *Recorder) CloseParagraph() { r.add(Call{Method: "CloseParagraph"}) }

func (r *Recorder) OpenSpan(props Properties) {
	r.add(Call{Method: "OpenSpan", Props: props.Clone()})
}
func (r *Recorder) CloseSpan() { r.add(Call{Method: "CloseSpan"}) }

func (r *Recorder) InsertText(text string) {
	r.add(Call{Method: "InsertText", Text: text})
}

// Methods returns the method names of the recorded calls.
func (r *Recorder) Methods() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Method
	}
	return out
}

// Find returns the recorded calls to the given method.
func (r *Recorder) Find(method string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Replay sends the recorded calls to p.
func (r *Recorder) Replay(p Painter) {
	for _, c := range r.Calls {
		switch c.Method {
		case "StartDocument":
			p.StartDocument()
		case "EndDocument":
			p.EndDocument()
		case "StartPage":
			p.StartPage(c.Props)
		case "EndPage":
			p.EndPage()
		case "OpenGroup":
			p.OpenGroup(c.Props)
		case "CloseGroup":
			p.CloseGroup()
		case "SetStyle":
			p.SetStyle(c.Props)
		case "DrawPath":
			p.DrawPath(c.Path)
		case "DrawRectangle":
			p.DrawRectangle(c.Props)
		case "DrawGraphicObject":
			p.DrawGraphicObject(c.Props)
		case "StartTextObject":
			p.StartTextObject(c.Props)
		case "EndTextObject":
			p.EndTextObject()
		case "OpenParagraph":
			p.OpenParagraph(c.Props)
		case "CloseParagraph":
			p.CloseParagraph()
		case "OpenSpan":
			p.OpenSpan(c.Props)
		case "CloseSpan":
			p.CloseSpan()
		case "InsertText":
			p.InsertText(c.Text)
		}
	}
}

// String returns one call per line.
func (r *Recorder) String() string {
	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

// Tee forwards every call to all its painters, in order.
type Tee []Painter

func (t Tee) StartDocument() {
	for _, p := range t {
		p.StartDocument()
	}
}

func (t Tee) EndDocument() {
	for _, p := range t {
		p.EndDocument()
	}
}

func (t Tee) StartPage(props Properties) {
	for _, p := range t {
		p.StartPage(props)
	}
}

func (t Tee) EndPage() {
	for _, p := range t {
		p.EndPage()
	}
}

func (t Tee) OpenGroup(props Properties) {
	for _, p := range t {
		p.OpenGroup(props)
	}
}

func (t Tee) CloseGroup() {
	for _, p := range t {
		p.CloseGroup()
	}
}

func (t Tee) SetStyle(props Properties) {
	for _, p := range t {
		p.SetStyle(props)
	}
}

func (t Tee) DrawPath(path PathData) {
	for _, p := range t {
		p.DrawPath(path)
	}
}

func (t Tee) DrawRectangle(props Properties) {
	for _, p := range t {
		p.DrawRectangle(props)
	}
}

func (t Tee) DrawGraphicObject(props Properties) {
	for _, p := range t {
		p.DrawGraphicObject(props)
	}
}

func (t Tee) StartTextObject(props Properties) {
	for _, p := range t {
		p.StartTextObject(props)
	}
}

func (t Tee) EndTextObject() {
	for _, p := range t {
		p.EndTextObject()
	}
}

func (t Tee) OpenParagraph(props Properties) {
	for _, p := range t {
		p.OpenParagraph(props)
	}
}

func (t Tee) CloseParagraph() {
	for _, p := range t {
		p.CloseParagraph()
	}
}

func (t Tee) OpenSpan(props Properties) {
	for _, p := range t {
		p.OpenSpan(props)
	}
}

func (t Tee) CloseSpan() {
	for _, p := range t {
		p.CloseSpan()
	}
}

func (t Tee) InsertText(text string) {
	for _, p := range t {
		p.InsertText(text)
	}
}
