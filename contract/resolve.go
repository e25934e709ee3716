package contract

// Result resolution. The resolver is a pure function of the two canonical
// post-reveal digests; it never runs with a rolled-back slot present
// because a void reveal prevents both-revealed from becoming true.

var legalChoices = [3]Choice{Rock, Paper, Scissors}

// choiceOf maps a canonical digest back to its choice code.
func choiceOf(d Digest) Choice {
	for _, c := range legalChoices {
		if Canonical(c) == d {
			return c
		}
	}
	return ChoiceNone
}

// beats applies the fixed cyclic rule: each choice beats exactly one other
// (rock > scissors > paper > rock).
func beats(a, b Choice) bool {
	return (uint8(b)+3-uint8(a))%3 == 2
}

// resolveWinner maps the host and guest canonical digests to the winning
// slot index, or drawSlot when the choices are equal.
func resolveWinner(host, guest Digest) int {
	if host == guest {
		return drawSlot
	}
	if beats(choiceOf(host), choiceOf(guest)) {
		return hostSlot
	}
	return guestSlot
}
