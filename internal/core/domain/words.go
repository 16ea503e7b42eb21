package domain

import "github.com/insider-games/insider-api/internal/pkg/random"

// secretWords is the catalog the leader's word is drawn from. Everyday nouns
// work best: concrete enough to guess, common enough that questions stay fair.
var secretWords = []string{
	"apple", "anchor", "balloon", "banana", "bicycle", "bridge", "butter",
	"cactus", "camera", "candle", "castle", "cheese", "chimney", "circus",
	"cloud", "compass", "cricket", "crown", "diamond", "dolphin", "dragon",
	"drum", "eagle", "engine", "feather", "fountain", "garlic", "giraffe",
	"glacier", "guitar", "hammer", "harbor", "helmet", "honey", "igloo",
	"island", "jacket", "jungle", "kettle", "kite", "ladder", "lantern",
	"lemon", "library", "lighthouse", "magnet", "mirror", "mountain",
	"mushroom", "needle", "ocean", "octopus", "orchestra", "parachute",
	"pencil", "penguin", "piano", "pillow", "pirate", "pocket", "pumpkin",
	"pyramid", "rainbow", "robot", "rocket", "saddle", "sandwich", "scissors",
	"shadow", "shipwreck", "skeleton", "snowball", "spider", "statue",
	"submarine", "telescope", "theater", "thunder", "ticket", "tunnel",
	"umbrella", "volcano", "waffle", "whistle", "window", "zebra",
}

// RandomWord draws a secret word uniformly from the catalog.
func RandomWord(r random.Source) string {
	return secretWords[r.IntN(len(secretWords))]
}
