package gallery

// RepairType categorizes a showcased intervention.
type RepairType string

const (
	RepairFullRevision    RepairType = "revision_complete"
	RepairRepair          RepairType = "reparation"
	RepairRestoration     RepairType = "restauration"
	RepairPolishing       RepairType = "polissage"
	RepairWaterResistance RepairType = "etancheite"
)

// Labels maps repair types to their French display names.
var Labels = map[RepairType]string{
	RepairFullRevision:    "Révision complète",
	RepairRepair:          "Réparation",
	RepairRestoration:     "Restauration",
	RepairPolishing:       "Polissage",
	RepairWaterResistance: "Étanchéité",
}

// Types lists every repair type in display order.
var Types = []RepairType{
	RepairFullRevision,
	RepairRepair,
	RepairRestoration,
	RepairPolishing,
	RepairWaterResistance,
}

// RepairTypeInfo pairs a repair type with its display label.
type RepairTypeInfo struct {
	Value RepairType `json:"value"`
	Label string     `json:"label"`
}

// Case is one before/after restoration showcased in the gallery. The brand
// and model are free text, not a reference into the boutique catalog.
type Case struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	WatchBrand  string     `json:"watchBrand"`
	WatchModel  string     `json:"watchModel"`
	Description string     `json:"description"`
	PhotoBefore string     `json:"photoBefore"`
	PhotoAfter  string     `json:"photoAfter"`
	RepairType  RepairType `json:"repairType"`
}
