package resolution

// ResolvedRoom is one room preview entry of a resolved layout.
type ResolvedRoom struct {
	ID       string   `json:"id"`
	ImageURL string   `json:"image_url"`
	RoomType string   `json:"room_type,omitempty"`
	Styles   []string `json:"styles"`
	Colors   []string `json:"colors"`
	Unique   []string `json:"unique"`
}

// ResolvedLayout is the purchase metadata derived for one nominal layout name.
// MasterHandle serializes as an empty string when no handle mapping exists;
// Preview3DURL is omitted entirely when absent. Callers depend on that
// distinction.
type ResolvedLayout struct {
	Name           string         `json:"name"`
	FormatLabel    string         `json:"format_label"`
	MasterHandle   string         `json:"master_handle"`
	Pieces         int            `json:"pieces"`
	Shape          ShapeTag       `json:"shape"`
	FormatType     FormatType     `json:"format_type"`
	PurchaseURL    string         `json:"purchase_url"`
	Sizes          []string       `json:"sizes"`
	Preview3DURL   string         `json:"preview_3d_url,omitempty"`
	Rooms          []ResolvedRoom `json:"rooms"`
	Price          float64        `json:"price"`
	CompareAtPrice float64        `json:"compare_at_price"`
}
