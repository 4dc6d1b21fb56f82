// Package fhpaint defines the contract between the FreeHand
// drawing traversal and the back ends producing the actual output.
//
// The traversal applies every transformation before calling
// the painter: coordinates received by a Painter are final page coordinates,
// with the origin at the top left corner and the y axis pointing down.
package fhpaint

// Painter knows how to do the actual draw operations
// but doesn't need any FreeHand knowledge.
//
// Calls are properly nested: StartDocument/EndDocument enclose the pages,
// StartPage/EndPage enclose the drawing, and every Open or Start
// call is matched by the corresponding Close or End call.
type Painter interface {
	StartDocument()
	EndDocument()

	// StartPage starts a new page, whose size is given by
	// the Width and Height properties.
	StartPage(props Properties)
	EndPage()

	// OpenGroup starts a group of elements, which may
	// carry style properties (such as opacity) shared by its content.
	OpenGroup(props Properties)
	CloseGroup()

	// SetStyle sets the style used by the following DrawPath calls.
	SetStyle(props Properties)

	// DrawPath fills and strokes the path using the current style.
	DrawPath(path PathData)

	// DrawRectangle draws the rectangle given by the X, Y, Width
	// and Height properties, using the current style.
	DrawRectangle(props Properties)

	// DrawGraphicObject draws an embedded image, whose content is stored
	// as base64 in the BinaryData property, typed by MimeType.
	DrawGraphicObject(props Properties)

	// StartTextObject starts a text frame, positioned with the
	// X, Y, Width, Height and Rotate properties.
	StartTextObject(props Properties)
	EndTextObject()

	OpenParagraph(props Properties)
	CloseParagraph()

	OpenSpan(props Properties)
	CloseSpan()

	// InsertText adds text to the current span.
	InsertText(text string)
}
