package quote

import (
	"fmt"
	"strings"
)

// composeMessage renders every collected field into the labelled free-text
// body the workshop receives by mail through the relay. Blank optional
// fields show as "-" so the mail always has the same shape.
func (d *Draft) composeMessage(reference string) string {
	contact := d.Contact.trimmed()
	watch := d.Watch.trimmed()
	problem := d.Problem.trimmed()

	var b strings.Builder

	fmt.Fprintf(&b, "Référence: %s\n", reference)
	fmt.Fprintf(&b, "Nom: %s\n", contact.Name)
	fmt.Fprintf(&b, "Email: %s\n", contact.Email)
	fmt.Fprintf(&b, "Téléphone: %s\n", orDash(contact.Phone))
	fmt.Fprintf(&b, "Marque: %s\n", watch.Brand)
	fmt.Fprintf(&b, "Modèle: %s\n", orDash(watch.Model))
	fmt.Fprintf(&b, "Type: %s\n", watch.Type)
	fmt.Fprintf(&b, "\nProblème:\n%s\n", problem.Description)
	fmt.Fprintf(&b, "\nPhotos:\n%s\n", orDash(watch.PhotoLink))

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
