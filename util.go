package huffman

func isBinary(str string) bool {
	for i := 0; i < len(str); i++ {
		if ch := str[i]; ch != '0' && ch != '1' {
			return false
		}
	}
	return true
}

func plural(n int, one string, many string) string {
	if n == 1 {
		return one
	}
	return many
}
