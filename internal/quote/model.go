package quote

import "strings"

// WatchType is what the customer declares about their watch; broader than
// the boutique movement enum because repairs also come in for chronographs
// and pieces the owner cannot identify.
type WatchType string

const (
	WatchTypeMechanical  WatchType = "mecanique"
	WatchTypeAutomatic   WatchType = "automatique"
	WatchTypeQuartz      WatchType = "quartz"
	WatchTypeChronograph WatchType = "chronographe"
	WatchTypeOther       WatchType = "autre"
)

// ContactInfo holds the step 1 fields of the quote wizard.
type ContactInfo struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

func (i ContactInfo) trimmed() ContactInfo {
	return ContactInfo{
		Name:  strings.TrimSpace(i.Name),
		Email: strings.TrimSpace(i.Email),
		Phone: strings.TrimSpace(i.Phone),
	}
}

// WatchInfo holds the step 2 fields of the quote wizard.
type WatchInfo struct {
	Brand     string    `json:"brand" validate:"required,min=1"`
	Model     string    `json:"model"`
	Type      WatchType `json:"type" validate:"required,oneof=mecanique automatique quartz chronographe autre"`
	PhotoLink string    `json:"photoLink"`
}

func (i WatchInfo) trimmed() WatchInfo {
	return WatchInfo{
		Brand:     strings.TrimSpace(i.Brand),
		Model:     strings.TrimSpace(i.Model),
		Type:      i.Type,
		PhotoLink: strings.TrimSpace(i.PhotoLink),
	}
}

// ProblemInfo holds the step 3 fields of the quote wizard.
type ProblemInfo struct {
	Description string `json:"description" validate:"required,min=10"`
}

func (i ProblemInfo) trimmed() ProblemInfo {
	return ProblemInfo{
		Description: strings.TrimSpace(i.Description),
	}
}

// Request is a complete quote request as received from the client.
type Request struct {
	Contact ContactInfo
	Watch   WatchInfo
	Problem ProblemInfo
}

// Receipt confirms an accepted submission.
type Receipt struct {
	ID string `json:"id"`
}
