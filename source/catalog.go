package source

// catalog lists the recordings shipped under data/audio.
var catalog = []string{
	"claretcanelon-baby_parrot.wav",
	"dwsd-kick_laid.wav",
	"esperar-chicken_imitation.wav",
	"gowers-amen_break.wav",
	"hallkev-timpani_roll.wav",
	"karolist-acoustic_kick.wav",
	"mefrancis13-crowded_room.wav",
	"talitha5-cafe_ambience.wav",
	"templeofhades-scratch_sample.wav",
	"unfa-fail_jingle.wav",
}

// Catalog returns the file names of the bundled recordings.
func Catalog() []string {
	return append([]string(nil), catalog...)
}
