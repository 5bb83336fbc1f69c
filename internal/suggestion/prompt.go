package suggestion

import "fmt"

const promptTemplate = `Lag et realistisk budsjettforslag for et arrangement i Norge.
Type arrangement: "%s".
Antatt antall deltakere: %d.

Returner en liste med budsjettposter.
- Inkluder både inntekter (f.eks. deltakeravgift, støtte) og kostnader (mat, leie, utstyr).
- Skill mellom faste kostnader (sum uavhengig av antall) og variable kostnader (avhenger av antall).
- Bruk realistiske priser i NOK.

Svar kun med en JSON-liste uten annen tekst. Hvert element har feltene:
- "name": navn på posten, f.eks. "Middag dag 1"
- "category": "income" eller "expense"
- "type": "fixed" eller "variable"
- "amount": totalbeløp for faste poster, 0 for variable
- "unitPrice": pris per enhet for variable poster, 0 for faste
- "quantity": antall enheter for variable poster, 0 for faste
`

// BuildPrompt renders the request sent to the model.
func BuildPrompt(description string, attendees int) string {
	return fmt.Sprintf(promptTemplate, description, attendees)
}
