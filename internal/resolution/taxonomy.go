package resolution

// ShapeTag classifies a layout's visual arrangement.
type ShapeTag string

const (
	ShapeHorizontal ShapeTag = "horizontal"
	ShapeVertical   ShapeTag = "vertical"
	ShapeSquare     ShapeTag = "square"
	ShapePanoramic  ShapeTag = "panoramic"
	ShapeHexagon    ShapeTag = "hexagon"
	ShapeMix        ShapeTag = "mix"
	ShapeUnknown    ShapeTag = "unknown"
)

// FormatType classifies a variant's physical product format.
type FormatType string

const (
	FormatCanvas        FormatType = "Canvas"
	FormatFramedCanvas  FormatType = "Framed Canvas"
	FormatPoster        FormatType = "Poster"
	FormatFloatingFrame FormatType = "Floating Frame"
	FormatUnknown       FormatType = "Unknown"
)

// shapeRule associates a shape tag with the normalized layout keys that map to
// it. Rules are evaluated in slice order; the first containing set wins, which
// keeps the tie-break policy explicit even though the sets are disjoint in the
// reference catalog.
type shapeRule struct {
	tag  ShapeTag
	keys map[string]struct{}
}

var shapeRules = []shapeRule{
	{ShapeHorizontal, keySet("horizontal", "2horizontal", "3horizontal", "4horizontal", "5horizontal")},
	{ShapeVertical, keySet("vertical", "2vertical", "3vertical", "4vertical", "5vertical")},
	{ShapeSquare, keySet("square", "1square", "3square", "4square")},
	{ShapePanoramic, keySet("panoramic", "panorama", "3panoramic", "5panoramic")},
	{ShapeHexagon, keySet("hexagon", "7hexagon")},
	{ShapeMix, keySet("mix", "4mix", "5mix", "6mix", "7mix")},
}

// formatRule maps a format label to a format type. Evaluated in slice order.
type formatRule struct {
	tag  FormatType
	keys map[string]struct{}
}

var formatRules = []formatRule{
	{FormatCanvas, keySet("1 Piece", "2 Piece", "3 Piece", "4 Piece", "5 Piece", "6 Piece", "7 Piece")},
	{FormatFramedCanvas, keySet("Framed Canvas")},
	{FormatPoster, keySet("Poster")},
	{FormatFloatingFrame, keySet("Floating Frame")},
}

// Room attribute vocabularies. Order is significant: multi-valued attributes
// are emitted in vocabulary order and the room type takes the first term
// present in the tag set.
var (
	roomTypeVocabulary = []string{
		"living room", "bedroom", "dining room", "office",
		"kitchen", "hallway", "bathroom", "nursery",
	}
	styleVocabulary = []string{
		"modern", "minimalist", "scandinavian", "industrial",
		"boho", "rustic", "classic", "coastal",
	}
	colorVocabulary = []string{
		"white", "black", "gray", "beige",
		"blue", "green", "brown", "pink",
	}
	uniquenessVocabulary = []string{
		"bestseller", "new arrival", "exclusive", "limited edition",
	}
)

func keySet(keys ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}
