package trigger

// #region lexical-patterns

// kindPatterns holds the ordered surface patterns for one lexically
// detectable kind. First match wins; at most one trigger per kind.
type kindPatterns struct {
	kind     Kind
	patterns []string
}

// lexicalPatterns is the full pattern table, scanned in order. All matching
// is lower-cased substring containment, deliberately surface-level.
var lexicalPatterns = []kindPatterns{
	{KindNoveltyRequest, []string{
		"different approach", "something new", "something different",
		"what if we tried", "what if you tried", "change of pace",
		"mix it up", "shake things up", "surprise me", "try another angle",
	}},
	{KindStuckLoop, []string{
		"going in circles", "same thing again", "you already said",
		"you keep saying", "we've been over this", "stuck in a loop",
		"repeating yourself",
	}},
	{KindPhilosophicalProbe, []string{
		"consciousness", "free will", "meaning of life", "what is it like to be",
		"are you aware", "do you experience", "subjective experience",
		"qualia", "nature of mind", "do you think you",
	}},
	{KindEmotionalDisclosure, []string{
		"i feel", "i'm scared", "i am scared", "makes me sad", "i'm anxious",
		"i am anxious", "i'm lonely", "i'm hurting", "i'm overwhelmed",
		"this hurts",
	}},
	{KindDirectChallenge, []string{
		"you're wrong", "you are wrong", "i disagree", "that's not true",
		"that is not true", "prove it", "i don't buy", "that's nonsense",
		"you can't be serious",
	}},
	{KindBoredomSignal, []string{
		"boring", "this is dull", "i'm bored", "i am bored", "whatever",
		"i guess so", "if you say so", "not interesting",
	}},
	{KindMetaCommentary, []string{
		"you sound like", "stop being so", "why do you talk", "why do you always",
		"your responses are", "the way you answer", "you're being",
		"you always respond",
	}},
	{KindIdentityProbe, []string{
		"who are you really", "what are you", "do you have a self",
		"are you a person", "is there a you", "behind the mask",
		"your true self",
	}},
	{KindCreativeInvitation, []string{
		"imagine", "write me", "tell me a story", "make up", "play along",
		"let's pretend", "compose", "invent a",
	}},
	{KindIntensityRequest, []string{
		"go deeper", "be honest", "don't hold back", "push further",
		"really tell me", "no filter", "give it to me straight", "be real with me",
	}},
}

// #endregion lexical-patterns
