package wordlist

// Fallback is substituted when the primary word list is missing or has
// fewer than MinWords words. "orange" and "dance" appear twice.
var Fallback = []string{
	"apple", "banana", "orange", "grape", "melon", "lemon", "cherry",
	"house", "table", "chair", "window", "door", "floor", "ceiling",
	"happy", "funny", "silly", "brave", "smart", "quiet", "loud",
	"river", "ocean", "mountain", "forest", "desert", "island", "valley",
	"music", "movie", "story", "picture", "painting", "dance", "song",
	"coffee", "pizza", "burger", "pasta", "cheese", "bread", "butter",
	"purple", "yellow", "orange", "green", "blue", "red", "pink",
	"jump", "skip", "run", "walk", "swim", "climb", "dance",
}
