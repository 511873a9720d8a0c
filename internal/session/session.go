// Package session formats the name shown in the scrolling session banner.
package session

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// MaxVoiceover is the upper bound of the random voiceover number.
const MaxVoiceover = 24

// Name formats the banner for the day of now and voiceover number vo.
func Name(now time.Time, vo int) string {
	return fmt.Sprintf("Your Session %04d_%02d_%02d_vo%d_mp3", now.Year(), int(now.Month()), now.Day(), vo)
}

// Random picks a voiceover number in [1, MaxVoiceover] from r, or from the
// global source when r is nil.
func Random(now time.Time, r *rand.Rand) string {
	var n int
	if r != nil {
		n = r.IntN(MaxVoiceover)
	} else {
		n = rand.IntN(MaxVoiceover)
	}
	return Name(now, n+1)
}
