package normalize

// contractions maps a lowercase contraction (with or without its apostrophe)
// onto its expanded form. Apostrophe-less spellings that collide with common
// words ("its", "were", "well", "ill", "id", "shed", "hell", "shell") are left out.
var contractions = map[string]string{
	"i'm": "i am", "im": "i am",
	"i've": "i have", "ive": "i have",
	"i'll":  "i will",
	"i'd":   "i would",
	"you're": "you are", "youre": "you are",
	"you've": "you have", "youve": "you have",
	"you'll": "you will", "youll": "you will",
	"you'd": "you would", "youd": "you would",
	"he's": "he is", "hes": "he is",
	"he'll": "he will",
	"he'd":  "he would",
	"she's": "she is", "shes": "she is",
	"she'll": "she will",
	"she'd":  "she would",
	"it's":   "it is",
	"it'll":  "it will",
	"we're":  "we are",
	"we've": "we have", "weve": "we have",
	"we'll": "we will",
	"we'd":  "we would",
	"they're": "they are", "theyre": "they are",
	"they've": "they have", "theyve": "they have",
	"they'll": "they will", "theyll": "they will",
	"they'd": "they would", "theyd": "they would",
	"that's": "that is", "thats": "that is",
	"what's": "what is", "whats": "what is",
	"where's": "where is", "wheres": "where is",
	"who's": "who is", "whos": "who is",
	"there's": "there is", "theres": "there is",
	"here's": "here is", "heres": "here is",
	"let's": "let us", "lets": "let us",
	"isn't": "is not", "isnt": "is not",
	"aren't": "are not", "arent": "are not",
	"wasn't": "was not", "wasnt": "was not",
	"weren't": "were not", "werent": "were not",
	"don't": "do not", "dont": "do not",
	"doesn't": "does not", "doesnt": "does not",
	"didn't": "did not", "didnt": "did not",
	"haven't": "have not", "havent": "have not",
	"hasn't": "has not", "hasnt": "has not",
	"hadn't": "had not", "hadnt": "had not",
	"can't": "can not", "cant": "can not", "cannot": "can not",
	"couldn't": "could not", "couldnt": "could not",
	"won't": "will not", "wont": "will not",
	"wouldn't": "would not", "wouldnt": "would not",
	"shouldn't": "should not", "shouldnt": "should not",
	"mustn't": "must not", "mustnt": "must not",
	"needn't": "need not", "neednt": "need not",
	"shan't": "shall not", "shant": "shall not",
	"ain't": "is not", "aint": "is not",
}

// numberWords maps spelled-out cardinals onto digits.
var numberWords = map[string]string{
	"zero": "0", "one": "1", "two": "2", "three": "3", "four": "4",
	"five": "5", "six": "6", "seven": "7", "eight": "8", "nine": "9",
	"ten": "10", "eleven": "11", "twelve": "12", "thirteen": "13",
	"fourteen": "14", "fifteen": "15", "sixteen": "16", "seventeen": "17",
	"eighteen": "18", "nineteen": "19",
	"twenty": "20", "thirty": "30", "forty": "40", "fifty": "50",
	"sixty": "60", "seventy": "70", "eighty": "80", "ninety": "90",
	"hundred": "100",
}

// compoundTens and compoundUnits drive the 21-32 pre-pass.
var compoundTens = map[string]int{"twenty": 20, "thirty": 30}

var compoundUnits = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
}

const maxCompoundNumber = 32

// britishToAmerican holds spelling and vocabulary pairs. Values must never
// appear as keys.
var britishToAmerican = map[string]string{
	"colour": "color", "colours": "colors", "coloured": "colored", "colourful": "colorful",
	"favourite": "favorite", "favourites": "favorites",
	"flavour": "flavor", "flavours": "flavors",
	"honour": "honor", "humour": "humor", "labour": "labor",
	"neighbour": "neighbor", "neighbours": "neighbors", "neighbourhood": "neighborhood",
	"behaviour": "behavior", "harbour": "harbor", "rumour": "rumor",
	"realise": "realize", "realised": "realized", "realising": "realizing",
	"organise": "organize", "organised": "organized", "organising": "organizing",
	"recognise": "recognize", "recognised": "recognized",
	"apologise": "apologize", "apologised": "apologized",
	"analyse": "analyze", "analysed": "analyzed",
	"practise": "practice", "practised": "practiced",
	"centre": "center", "centres": "centers",
	"theatre": "theater", "theatres": "theaters",
	"metre": "meter", "metres": "meters",
	"litre": "liter", "litres": "liters",
	"fibre": "fiber",
	"travelling": "traveling", "travelled": "traveled", "traveller": "traveler", "travellers": "travelers",
	"cancelled": "canceled", "cancelling": "canceling",
	"jewellery": "jewelry", "pyjamas": "pajamas", "programme": "program",
	"catalogue": "catalog", "dialogue": "dialog",
	"defence": "defense", "licence": "license", "offence": "offense",
	"cheque": "check", "tyre": "tire", "tyres": "tires",
	"aeroplane": "airplane", "grey": "gray", "mum": "mom", "maths": "math",
	"flat": "apartment", "flats": "apartments",
}

// timeExpressions are temporal phrases that may sit at either end of a
// sentence without changing its meaning.
var timeExpressions = []string{
	"today", "tomorrow", "yesterday", "tonight", "now", "right now",
	"at the moment", "at the weekend", "on the weekend",
	"this morning", "this afternoon", "this evening",
	"this week", "this month", "this year",
	"next week", "next month", "next year",
	"last week", "last month", "last year", "last night",
	"every day", "every week", "every morning", "every evening",
	"in the morning", "in the afternoon", "in the evening", "at night",
	"always", "usually", "often", "sometimes", "soon", "later",
	"recently", "at the same time",
}

// movableAdverbs may appear anywhere in a clause.
var movableAdverbs = []string{
	"already", "just", "never", "always", "still", "yet", "also", "even",
	"only", "probably", "certainly", "really", "actually", "finally",
	"suddenly", "quickly", "slowly",
}

// genderedVerbs are the verbs that follow he/she in the collapsed pairs.
var genderedVerbs = []string{
	"is", "was", "has", "had", "does", "did",
	"will", "would", "can", "could", "should", "shall", "must", "might", "may",
}

const (
	personToken   = "PERSON"
	theirToken    = "THEIR"
	themselfToken = "THEMSELF"
)
