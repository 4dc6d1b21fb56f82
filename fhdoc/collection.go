package fhdoc

import "github.com/benoitkugler/freehand/fhpath"

// Collection stores the records of one document, one map per kind.
// Collecting twice the same ID overrides the first value, except
// for the Block record.
//
// Getters return nil for the 0 ID or an unknown ID.
// The returned values must not be modified.
type Collection struct {
	transforms             map[ID]fhpath.Transform
	paths                  map[ID]Path
	groups                 map[ID]Group
	clipGroups             map[ID]Group
	compositePaths         map[ID]CompositePath
	lists                  map[ID]List
	textObjects            map[ID]TextObject
	tStrings               map[ID]TString
	paragraphs             map[ID]Paragraph
	textBlocks             map[ID]TextBlock
	charProperties         map[ID]CharProperties
	paragraphProperties    map[ID]ParagraphProperties
	fonts                  map[ID]Font
	displayTexts           map[ID]DisplayText
	imageImports           map[ID]ImageImport
	dataLists              map[ID]DataList
	data                   map[ID][]byte
	propLists              map[ID]PropList
	graphicStyles          map[ID]GraphicStyle
	attributeHolders       map[ID]AttributeHolder
	filterAttributeHolders map[ID]FilterAttributeHolder
	basicFills             map[ID]BasicFill
	linearFills            map[ID]LinearFill
	radialFills            map[ID]RadialFill
	lensFills              map[ID]LensFill
	tileFills              map[ID]TileFill
	patternFills           map[ID]PatternFill
	multiColorLists        map[ID]MultiColorList
	basicLines             map[ID]BasicLine
	opacityFilters         map[ID]OpacityFilter
	shadowFilters          map[ID]ShadowFilter
	glowFilters            map[ID]GlowFilter
	rgbColors              map[ID]RGBColor
	tintColors             map[ID]TintColor
	symbolClasses          map[ID]SymbolClass
	symbolInstances        map[ID]SymbolInstance
	newBlends              map[ID]NewBlend
	layers                 map[ID]Layer

	blockID ID
	block   *Block
	tailID  ID
	tail    *Tail

	names   map[ID]string
	strings map[ID]string

	strokeNameID, fillNameID, contentsNameID ID
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{
		transforms:             make(map[ID]fhpath.Transform),
		paths:                  make(map[ID]Path),
		groups:                 make(map[ID]Group),
		clipGroups:             make(map[ID]Group),
		compositePaths:         make(map[ID]CompositePath),
		lists:                  make(map[ID]List),
		textObjects:            make(map[ID]TextObject),
		tStrings:               make(map[ID]TString),
		paragraphs:             make(map[ID]Paragraph),
		textBlocks:             make(map[ID]TextBlock),
		charProperties:         make(map[ID]CharProperties),
		paragraphProperties:    make(map[ID]ParagraphProperties),
		fonts:                  make(map[ID]Font),
		displayTexts:           make(map[ID]DisplayText),
		imageImports:           make(map[ID]ImageImport),
		dataLists:              make(map[ID]DataList),
		data:                   make(map[ID][]byte),
		propLists:              make(map[ID]PropList),
		graphicStyles:          make(map[ID]GraphicStyle),
		attributeHolders:       make(map[ID]AttributeHolder),
		filterAttributeHolders: make(map[ID]FilterAttributeHolder),
		basicFills:             make(map[ID]BasicFill),
		linearFills:            make(map[ID]LinearFill),
		radialFills:            make(map[ID]RadialFill),
		lensFills:              make(map[ID]LensFill),
		tileFills:              make(map[ID]TileFill),
		patternFills:           make(map[ID]PatternFill),
		multiColorLists:        make(map[ID]MultiColorList),
		basicLines:             make(map[ID]BasicLine),
		opacityFilters:         make(map[ID]OpacityFilter),
		shadowFilters:          make(map[ID]ShadowFilter),
		glowFilters:            make(map[ID]GlowFilter),
		rgbColors:              make(map[ID]RGBColor),
		tintColors:             make(map[ID]TintColor),
		symbolClasses:          make(map[ID]SymbolClass),
		symbolInstances:        make(map[ID]SymbolInstance),
		newBlends:              make(map[ID]NewBlend),
		layers:                 make(map[ID]Layer),
		names:                  make(map[ID]string),
		strings:                make(map[ID]string),
	}
}

func lookup[T any](m map[ID]T, id ID) *T {
	if id == 0 {
		return nil
	}
	v, ok := m[id]
	if !ok {
		return nil
	}
	return &v
}

// Data returns the given byte fragment.
func (c *Collection) Data(id ID) []byte {
	if id == 0 {
		return nil
	}
	return c.data[id]
}

// CollectTransform stores a transformation matrix.
func (c *Collection) CollectTransform(id ID, t fhpath.Transform) { c.transforms[id] = t }

// Transform returns the given matrix, or nil.
func (c *Collection) Transform(id ID) *fhpath.Transform { return lookup(c.transforms, id) }

func (c *Collection) CollectPath(id ID, v Path) { c.paths[id] = v }
func (c *Collection) Path(id ID) *Path { return lookup(c.paths, id) }

func (c *Collection) CollectGroup(id ID, v Group) { c.groups[id] = v }
func (c *Collection) Group(id ID) *Group { return lookup(c.groups, id) }

func (c *Collection) CollectClipGroup(id ID, v Group) { c.clipGroups[id] = v }
func (c *Collection) ClipGroup(id ID) *Group { return lookup(c.clipGroups, id) }

func (c *Collection) CollectCompositePath(id ID, v CompositePath) { c.compositePaths[id] = v }
func (c *Collection) CompositePath(id ID) *CompositePath { return lookup(c.compositePaths, id) }

func (c *Collection) CollectList(id ID, v List) { c.lists[id] = v }
func (c *Collection) List(id ID) *List { return lookup(c.lists, id) }

func (c *Collection) CollectTextObject(id ID, v TextObject) { c.textObjects[id] = v }
func (c *Collection) TextObject(id ID) *TextObject { return lookup(c.textObjects, id) }

func (c *Collection) CollectTString(id ID, v TString) { c.tStrings[id] = v }
func (c *Collection) TString(id ID) *TString { return lookup(c.tStrings, id) }

func (c *Collection) CollectParagraph(id ID, v Paragraph) { c.paragraphs[id] = v }
func (c *Collection) Paragraph(id ID) *Paragraph { return lookup(c.paragraphs, id) }

func (c *Collection) CollectTextBlock(id ID, v TextBlock) { c.textBlocks[id] = v }
func (c *Collection) TextBlock(id ID) *TextBlock { return lookup(c.textBlocks, id) }

func (c *Collection) CollectCharProperties(id ID, v CharProperties) { c.charProperties[id] = v }
func (c *Collection) CharProperties(id ID) *CharProperties { return lookup(c.charProperties, id) }

func (c *Collection) CollectParagraphProperties(id ID, v ParagraphProperties) { c.paragraphProperties[id] = v }
func (c *Collection) ParagraphProperties(id ID) *ParagraphProperties { return lookup(c.paragraphProperties, id) }

func (c *Collection) CollectFont(id ID, v Font) { c.fonts[id] = v }
func (c *Collection) Font(id ID) *Font { return lookup(c.fonts, id) }

func (c *Collection) CollectDisplayText(id ID, v DisplayText) { c.displayTexts[id] = v }
func (c *Collection) DisplayText(id ID) *DisplayText { return lookup(c.displayTexts, id) }

func (c *Collection) CollectImageImport(id ID, v ImageImport) { c.imageImports[id] = v }
func (c *Collection) ImageImport(id ID) *ImageImport { return lookup(c.imageImports, id) }

func (c *Collection) CollectDataList(id ID, v DataList) { c.dataLists[id] = v }
func (c *Collection) DataList(id ID) *DataList { return lookup(c.dataLists, id) }

// CollectData stores a byte fragment of an image payload.
func (c *Collection) CollectData(id ID, data []byte) { c.data[id] = data }

func (c *Collection) CollectPropList(id ID, v PropList) { c.propLists[id] = v }
func (c *Collection) PropList(id ID) *PropList { return lookup(c.propLists, id) }

func (c *Collection) CollectGraphicStyle(id ID, v GraphicStyle) { c.graphicStyles[id] = v }
func (c *Collection) GraphicStyle(id ID) *GraphicStyle { return lookup(c.graphicStyles, id) }

func (c *Collection) CollectAttributeHolder(id ID, v AttributeHolder) { c.attributeHolders[id] = v }
func (c *Collection) AttributeHolder(id ID) *AttributeHolder { return lookup(c.attributeHolders, id) }

func (c *Collection) CollectFilterAttributeHolder(id ID, v FilterAttributeHolder) { c.filterAttributeHolders[id] = v }
func (c *Collection) FilterAttributeHolder(id ID) *FilterAttributeHolder { return lookup(c.filterAttributeHolders, id) }

func (c *Collection) CollectBasicFill(id ID, v BasicFill) { c.basicFills[id] = v }
func (c *Collection) BasicFill(id ID) *BasicFill { return lookup(c.basicFills, id) }

func (c *Collection) CollectLinearFill(id ID, v LinearFill) { c.linearFills[id] = v }
func (c *Collection) LinearFill(id ID) *LinearFill { return lookup(c.linearFills, id) }

func (c *Collection) CollectRadialFill(id ID, v RadialFill) { c.radialFills[id] = v }
func (c *Collection) RadialFill(id ID) *RadialFill { return lookup(c.radialFills, id) }

func (c *Collection) CollectLensFill(id ID, v LensFill) { c.lensFills[id] = v }
func (c *Collection) LensFill(id ID) *LensFill { return lookup(c.lensFills, id) }

func (c *Collection) CollectTileFill(id ID, v TileFill) { c.tileFills[id] = v }
func (c *Collection) TileFill(id ID) *TileFill { return lookup(c.tileFills, id) }

func (c *Collection) CollectPatternFill(id ID, v PatternFill) { c.patternFills[id] = v }
func (c *Collection) PatternFill(id ID) *PatternFill { return lookup(c.patternFills, id) }

func (c *Collection) CollectMultiColorList(id ID, v MultiColorList) { c.multiColorLists[id] = v }
func (c *Collection) MultiColorList(id ID) *MultiColorList { return lookup(c.multiColorLists, id) }

func (c *Collection) CollectBasicLine(id ID, v BasicLine) { c.basicLines[id] = v }
func (c *Collection) BasicLine(id ID) *BasicLine { return lookup(c.basicLines, id) }

func (c *Collection) CollectOpacityFilter(id ID, v OpacityFilter) { c.opacityFilters[id] = v }
func (c *Collection) OpacityFilter(id ID) *OpacityFilter { return lookup(c.opacityFilters, id) }

func (c *Collection) CollectShadowFilter(id ID, v ShadowFilter) { c.shadowFilters[id] = v }
func (c *Collection) ShadowFilter(id ID) *ShadowFilter { return lookup(c.shadowFilters, id) }

func (c *Collection) CollectGlowFilter(id ID, v GlowFilter) { c.glowFilters[id] = v }
func (c *Collection) GlowFilter(id ID) *GlowFilter { return lookup(c.glowFilters, id) }

func (c *Collection) CollectRGBColor(id ID, v RGBColor) { c.rgbColors[id] = v }
func (c *Collection) RGBColor(id ID) *RGBColor { return lookup(c.rgbColors, id) }

func (c *Collection) CollectTintColor(id ID, v TintColor) { c.tintColors[id] = v }
func (c *Collection) TintColor(id ID) *TintColor { return lookup(c.tintColors, id) }

func (c *Collection) CollectSymbolClass(id ID, v SymbolClass) { c.symbolClasses[id] = v }
func (c *Collection) SymbolClass(id ID) *SymbolClass { return lookup(c.symbolClasses, id) }

func (c *Collection) CollectSymbolInstance(id ID, v SymbolInstance) { c.symbolInstances[id] = v }
func (c *Collection) SymbolInstance(id ID) *SymbolInstance { return lookup(c.symbolInstances, id) }

func (c *Collection) CollectNewBlend(id ID, v NewBlend) { c.newBlends[id] = v }
func (c *Collection) NewBlend(id ID) *NewBlend { return lookup(c.newBlends, id) }

func (c *Collection) CollectLayer(id ID, v Layer) { c.layers[id] = v }
func (c *Collection) Layer(id ID) *Layer { return lookup(c.layers, id) }
