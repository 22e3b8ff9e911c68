package roster

// ValidORCID reports whether s is a well-formed ORCID iD: four groups of
// four characters separated by hyphens, fifteen digits plus a final check
// character that may be 'X', with the checksum computed per ISO 7064 11,2.
func ValidORCID(s string) bool {
	if len(s) != 19 {
		return false
	}
	total := 0
	for i, c := range s {
		switch i {
		case 4, 9, 14:
			if c != '-' {
				return false
			}
		case 18:
			var check int
			switch {
			case c == 'X':
				check = 10
			case c >= '0' && c <= '9':
				check = int(c - '0')
			default:
				return false
			}
			return check == (12-total%11)%11
		default:
			if c < '0' || c > '9' {
				return false
			}
			total = (total + int(c-'0')) * 2
		}
	}
	return false
}
