package normalize

import "strings"

// FullName is a split person name.
type FullName struct {
	First string
	Last  string
}

// NameFromEmail derives a person name from the local part of an email
// address. "jean-philippe.gelebart@x.com" yields {Jean-Philippe, Gelebart}.
// The local part must contain at least two dot-separated segments: the first
// is the first name, the rest join (space-separated) as the last name.
// Hyphen-separated sub-words are capitalized independently, which keeps
// compound first names intact.
func NameFromEmail(email string) (FullName, bool) {
	local, _, found := strings.Cut(strings.TrimSpace(email), "@")
	if !found {
		return FullName{}, false
	}

	segments := strings.Split(local, ".")
	if len(segments) < 2 {
		return FullName{}, false
	}

	for i, seg := range segments {
		segments[i] = capitalizeCompound(seg)
	}

	return FullName{
		First: segments[0],
		Last:  strings.Join(segments[1:], " "),
	}, true
}

// SplitFullName splits a free-text full name. All-uppercase input follows the
// "LASTNAME Firstname..." export convention: first token is the last name,
// remainder the first name. Mixed-case input is the usual
// "Firstname Lastname..." order.
func SplitFullName(full string) FullName {
	tokens := strings.Fields(full)
	if len(tokens) == 0 {
		return FullName{}
	}
	if len(tokens) == 1 {
		return FullName{First: tokens[0]}
	}

	if strings.ToUpper(full) == full {
		return FullName{
			Last:  tokens[0],
			First: strings.Join(tokens[1:], " "),
		}
	}
	return FullName{
		First: tokens[0],
		Last:  strings.Join(tokens[1:], " "),
	}
}

// capitalizeCompound uppercases the first letter of every hyphen-separated
// sub-word and lowercases the rest: "jean-philippe" -> "Jean-Philippe".
func capitalizeCompound(word string) string {
	parts := strings.Split(word, "-")
	for i, part := range parts {
		parts[i] = capitalize(part)
	}
	return strings.Join(parts, "-")
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}
