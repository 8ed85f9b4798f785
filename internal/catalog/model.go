package catalog

// Movement is the movement type of a listed watch.
type Movement string

const (
	MovementMechanical Movement = "mecanique"
	MovementAutomatic  Movement = "automatique"
	MovementQuartz     Movement = "quartz"
)

// Condition is the cosmetic and mechanical condition grade of a listing.
type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionVeryGood  Condition = "tres_bon"
	ConditionGood      Condition = "bon"
)

// Listing is a single watch offered for sale in the boutique. The first
// entry of Photos is the primary picture.
type Listing struct {
	ID              string    `json:"id"`
	Brand           string    `json:"brand"`
	Model           string    `json:"model"`
	Year            int       `json:"year"`
	MovementType    Movement  `json:"movementType"`
	Condition       Condition `json:"condition"`
	Description     string    `json:"description"`
	Price           int       `json:"price"`
	Photos          []string  `json:"photos"`
	IsRare          bool      `json:"isRare"`
	RevisionDetails string    `json:"revisionDetails"`
	WarrantyMonths  int       `json:"warrantyMonths"`
}
