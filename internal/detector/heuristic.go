package detector

import "strings"

const italianDiacritics = "àèéìòù"

// Function words are matched space-padded so "la" never matches inside
// "lava". Each word counts once however often it occurs.
var italianWords = []string{
	" il ", " lo ", " la ", " gli ", " le ", " un ", " una ", " che ",
	" non ", " per ", " con ", " come ", " anche ", " però ", " quindi ",
	" perché ", " del ", " della ", " dei ", " delle ", " nel ", " nella ",
	" nell'", " è ", " sono ",
}

var englishWords = []string{
	" the ", " and ", " of ", " to ", " in ", " for ", " with ", " that ",
	" not ", " is ", " are ", " was ", " were ", " you ", " your ", " this ",
	" it ",
}

// HeuristicScore is positive for Italian-looking text and negative for
// English-looking text: +2 per distinct Italian diacritic, +1 per Italian
// function word, -1 per English function word.
func HeuristicScore(text string) int {
	t := strings.ToLower(text)
	score := 0

	for _, ch := range italianDiacritics {
		if strings.ContainsRune(t, ch) {
			score += 2
		}
	}

	padded := " " + t + " "
	for _, w := range italianWords {
		if strings.Contains(padded, w) {
			score++
		}
	}
	for _, w := range englishWords {
		if strings.Contains(padded, w) {
			score--
		}
	}
	return score
}
