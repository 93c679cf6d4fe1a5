package jokes

type Joke struct {
	Setup     string
	Punchline string
}

// Classic is the six joke set shown by the plain demo.
var Classic = []Joke{
	{"What do you call a dinosaur that is sleeping?", "A dino-snore!"},
	{"What is fast, loud, and crunchy?", "A rocket chip"},
	{"Why did the teddy bear say no to dessert?", "Because she was stuffed!"},
	{"What has ears but cannot hear?", "A cornfield"},
	{"What did the right eye say to the left eye?", "Between you and me, something smells."},
	{"What do you get when you cross a vampire and a snowman?", "Frost bite"},
}

// Extended is Classic plus the rest of the collection.
var Extended = append(append([]Joke(nil), Classic...),
	Joke{"Why did the student eat his homework?", "Because the teacher told him it was a piece of cake."},
	Joke{"What is brown, hairy, and wears sunglasses?", "A coconut on vacation."},
	Joke{"What did the dalmatian say after lunch?", "That hit the spot"},
	Joke{"Why was 6 afraid of 7?", "Because 7, 8, 9"},
	Joke{"When does a joke become a dad joke?", "When it's a parent"},
	Joke{"What did the limestone say to the geologist?", "Don't take me for granite!"},
	Joke{"What kind of tree fits in your hand?", "A palm tree"},
	Joke{"What did the baby corn say to the momma corn?", "Where is pop corn?"},
	Joke{"What is worse than raining cats and dogs?", "Hailing taxis"},
	Joke{"What building in New York City has the most stories?", "The public library"},
	Joke{"What is worse than finding a worm in your apple?", "Finding half a worm in your apple."},
	Joke{"Where did these jokes come from?", "Here: https://redtri.com/best-jokes-for-kids/slide/2"},
)
