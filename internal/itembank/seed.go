package itembank

// seedBanks holds the built-in diagnostic item banks, 12 items per
// subject spanning the calibrated difficulty range [-2, 2]. Hosts with
// larger banks supply them through a FileProvider instead.
var seedBanks = map[Subject][]Item{
	SubjectMath: {
		{ID: "m-count-01", Subject: SubjectMath, Skill: "counting", Difficulty: -2.0, Type: TypeCount, Prompt: "How many stars? ***", CorrectAnswer: "3"},
		{ID: "m-count-02", Subject: SubjectMath, Skill: "counting", Difficulty: -1.6, Type: TypeCount, Prompt: "How many dots? .......", CorrectAnswer: "7"},
		{ID: "m-add-01", Subject: SubjectMath, Skill: "addition", Difficulty: -1.2, Type: TypeMCQ, Prompt: "What is 4 + 3?", Choices: []string{"6", "7", "8", "9"}, CorrectAnswer: "7"},
		{ID: "m-add-02", Subject: SubjectMath, Skill: "addition", Difficulty: -0.8, Type: TypeMCQ, Prompt: "What is 28 + 15?", Choices: []string{"33", "42", "43", "44"}, CorrectAnswer: "43"},
		{ID: "m-sub-01", Subject: SubjectMath, Skill: "subtraction", Difficulty: -0.4, Type: TypeMCQ, Prompt: "What is 52 - 17?", Choices: []string{"34", "35", "36", "45"}, CorrectAnswer: "35"},
		{ID: "m-mult-01", Subject: SubjectMath, Skill: "multiplication", Difficulty: 0.0, Type: TypeMCQ, Prompt: "What is 7 x 8?", Choices: []string{"54", "56", "63", "64"}, CorrectAnswer: "56"},
		{ID: "m-div-01", Subject: SubjectMath, Skill: "division", Difficulty: 0.4, Type: TypeMCQ, Prompt: "What is 96 / 8?", Choices: []string{"11", "12", "13", "14"}, CorrectAnswer: "12"},
		{ID: "m-frac-01", Subject: SubjectMath, Skill: "fractions", Difficulty: 0.8, Type: TypeMCQ, Prompt: "Which is larger: 2/3 or 3/5?", Choices: []string{"2/3", "3/5", "equal"}, CorrectAnswer: "2/3"},
		{ID: "m-dec-01", Subject: SubjectMath, Skill: "decimals", Difficulty: 1.2, Type: TypeMCQ, Prompt: "What is 0.25 x 0.4?", Choices: []string{"0.01", "0.1", "1.0", "0.65"}, CorrectAnswer: "0.1"},
		{ID: "m-alg-01", Subject: SubjectMath, Skill: "algebra", Difficulty: 1.5, Type: TypeMCQ, Prompt: "Solve for x: 3x - 7 = 14", Choices: []string{"5", "6", "7", "21"}, CorrectAnswer: "7"},
		{ID: "m-alg-02", Subject: SubjectMath, Skill: "algebra", Difficulty: 1.8, Type: TypeMCQ, Prompt: "Factor: x^2 - 9", Choices: []string{"(x-3)(x-3)", "(x+3)(x-3)", "(x+9)(x-1)", "x(x-9)"}, CorrectAnswer: "(x+3)(x-3)"},
		{ID: "m-geo-01", Subject: SubjectMath, Skill: "geometry", Difficulty: 2.0, Type: TypeMCQ, Prompt: "A circle has area 16*pi. What is its radius?", Choices: []string{"2", "4", "8", "16"}, CorrectAnswer: "4"},
	},
	SubjectReading: {
		{ID: "r-ph-01", Subject: SubjectReading, Skill: "phonics", Difficulty: -2.0, Type: TypePhoneme, Prompt: "Which word starts with the /b/ sound?", Choices: []string{"ball", "cat", "dog"}, CorrectAnswer: "ball"},
		{ID: "r-ph-02", Subject: SubjectReading, Skill: "phonics", Difficulty: -1.5, Type: TypePhoneme, Prompt: "Which word ends with the /t/ sound?", Choices: []string{"car", "hat", "pin"}, CorrectAnswer: "hat"},
		{ID: "r-ph-03", Subject: SubjectReading, Skill: "phonics", Difficulty: -1.0, Type: TypePhoneme, Prompt: "Which word has the long /a/ sound?", Choices: []string{"cap", "cake", "cup"}, CorrectAnswer: "cake"},
		{ID: "r-voc-01", Subject: SubjectReading, Skill: "vocabulary", Difficulty: -0.5, Type: TypeMCQ, Prompt: "Which word means the same as 'happy'?", Choices: []string{"sad", "glad", "mad", "bad"}, CorrectAnswer: "glad"},
		{ID: "r-voc-02", Subject: SubjectReading, Skill: "vocabulary", Difficulty: 0.0, Type: TypeMCQ, Prompt: "What does 'enormous' mean?", Choices: []string{"tiny", "huge", "loud", "fast"}, CorrectAnswer: "huge"},
		{ID: "r-comp-01", Subject: SubjectReading, Skill: "comprehension", Difficulty: 0.3, Type: TypeMCQ, Prompt: "A 'main idea' tells you:", Choices: []string{"one small detail", "what the text is mostly about", "the author's name"}, CorrectAnswer: "what the text is mostly about"},
		{ID: "r-comp-02", Subject: SubjectReading, Skill: "comprehension", Difficulty: 0.7, Type: TypeMCQ, Prompt: "An inference is a conclusion based on:", Choices: []string{"evidence and reasoning", "the title only", "pictures only"}, CorrectAnswer: "evidence and reasoning"},
		{ID: "r-gram-01", Subject: SubjectReading, Skill: "grammar", Difficulty: 1.0, Type: TypeMCQ, Prompt: "Which sentence is punctuated correctly?", Choices: []string{"Its raining outside.", "It's raining outside.", "Its' raining outside."}, CorrectAnswer: "It's raining outside."},
		{ID: "r-lit-01", Subject: SubjectReading, Skill: "literary-analysis", Difficulty: 1.4, Type: TypeMCQ, Prompt: "'The wind whispered through the trees' is an example of:", Choices: []string{"simile", "personification", "alliteration", "hyperbole"}, CorrectAnswer: "personification"},
		{ID: "r-lit-02", Subject: SubjectReading, Skill: "literary-analysis", Difficulty: 1.7, Type: TypeMCQ, Prompt: "Dramatic irony occurs when:", Choices: []string{"the audience knows more than a character", "a character tells a joke", "the ending is sad"}, CorrectAnswer: "the audience knows more than a character"},
		{ID: "r-voc-03", Subject: SubjectReading, Skill: "vocabulary", Difficulty: 1.9, Type: TypeMCQ, Prompt: "'Ubiquitous' most nearly means:", Choices: []string{"rare", "everywhere", "hidden", "ancient"}, CorrectAnswer: "everywhere"},
		{ID: "r-comp-03", Subject: SubjectReading, Skill: "comprehension", Difficulty: 2.0, Type: TypeMCQ, Prompt: "An unreliable narrator is one whose:", Choices: []string{"account cannot be fully trusted", "story is too short", "language is too simple"}, CorrectAnswer: "account cannot be fully trusted"},
	},
	SubjectScience: {
		{ID: "s-obs-01", Subject: SubjectScience, Skill: "observation", Difficulty: -2.0, Type: TypeMCQ, Prompt: "Which animal can fly?", Choices: []string{"fish", "bird", "dog"}, CorrectAnswer: "bird"},
		{ID: "s-obs-02", Subject: SubjectScience, Skill: "observation", Difficulty: -1.4, Type: TypeMCQ, Prompt: "Water freezes into:", Choices: []string{"steam", "ice", "rain"}, CorrectAnswer: "ice"},
		{ID: "s-life-01", Subject: SubjectScience, Skill: "life-science", Difficulty: -0.9, Type: TypeMCQ, Prompt: "Plants make food using:", Choices: []string{"moonlight", "sunlight", "soil only"}, CorrectAnswer: "sunlight"},
		{ID: "s-life-02", Subject: SubjectScience, Skill: "life-science", Difficulty: -0.4, Type: TypeMCQ, Prompt: "Which is a producer in a food chain?", Choices: []string{"grass", "rabbit", "fox"}, CorrectAnswer: "grass"},
		{ID: "s-earth-01", Subject: SubjectScience, Skill: "earth-science", Difficulty: 0.0, Type: TypeMCQ, Prompt: "What causes day and night?", Choices: []string{"Earth's rotation", "the Moon's glow", "clouds moving"}, CorrectAnswer: "Earth's rotation"},
		{ID: "s-phys-01", Subject: SubjectScience, Skill: "physical-science", Difficulty: 0.4, Type: TypeMCQ, Prompt: "Which state of matter has a fixed shape?", Choices: []string{"solid", "liquid", "gas"}, CorrectAnswer: "solid"},
		{ID: "s-phys-02", Subject: SubjectScience, Skill: "physical-science", Difficulty: 0.8, Type: TypeMCQ, Prompt: "Force equals mass times:", Choices: []string{"speed", "acceleration", "distance", "weight"}, CorrectAnswer: "acceleration"},
		{ID: "s-chem-01", Subject: SubjectScience, Skill: "chemistry", Difficulty: 1.2, Type: TypeMCQ, Prompt: "The atomic number of an element is the number of:", Choices: []string{"neutrons", "protons", "electrons shells", "isotopes"}, CorrectAnswer: "protons"},
		{ID: "s-bio-01", Subject: SubjectScience, Skill: "biology", Difficulty: 1.5, Type: TypeMCQ, Prompt: "Which organelle produces ATP?", Choices: []string{"nucleus", "ribosome", "mitochondrion", "vacuole"}, CorrectAnswer: "mitochondrion"},
		{ID: "s-chem-02", Subject: SubjectScience, Skill: "chemistry", Difficulty: 1.8, Type: TypeMCQ, Prompt: "A pH of 3 indicates a solution that is:", Choices: []string{"strongly basic", "neutral", "acidic", "inert"}, CorrectAnswer: "acidic"},
		{ID: "s-phys-03", Subject: SubjectScience, Skill: "physical-science", Difficulty: 2.0, Type: TypeMCQ, Prompt: "Which phenomenon demonstrates the wave nature of light?", Choices: []string{"interference", "reflection only", "free fall", "convection"}, CorrectAnswer: "interference"},
		{ID: "s-earth-02", Subject: SubjectScience, Skill: "earth-science", Difficulty: 0.9, Type: TypeMCQ, Prompt: "Tectonic plates float on the:", Choices: []string{"inner core", "mantle", "crust", "atmosphere"}, CorrectAnswer: "mantle"},
	},
	SubjectSocialStudies: {
		{ID: "ss-map-01", Subject: SubjectSocialStudies, Skill: "geography", Difficulty: -2.0, Type: TypeMap, Prompt: "Which of these is an ocean?", Choices: []string{"Pacific", "Sahara", "Everest"}, CorrectAnswer: "Pacific"},
		{ID: "ss-map-02", Subject: SubjectSocialStudies, Skill: "geography", Difficulty: -1.4, Type: TypeMap, Prompt: "Which continent is the United States on?", Choices: []string{"Europe", "North America", "Asia"}, CorrectAnswer: "North America"},
		{ID: "ss-map-03", Subject: SubjectSocialStudies, Skill: "geography", Difficulty: -0.8, Type: TypeMap, Prompt: "Which country borders the United States to the north?", Choices: []string{"Mexico", "Canada", "Brazil"}, CorrectAnswer: "Canada"},
		{ID: "ss-civ-01", Subject: SubjectSocialStudies, Skill: "civics", Difficulty: -0.3, Type: TypeMCQ, Prompt: "Laws in a community are made to:", Choices: []string{"keep people safe and fair", "make life harder", "sell more goods"}, CorrectAnswer: "keep people safe and fair"},
		{ID: "ss-civ-02", Subject: SubjectSocialStudies, Skill: "civics", Difficulty: 0.2, Type: TypeMCQ, Prompt: "How many branches does the US government have?", Choices: []string{"two", "three", "four", "five"}, CorrectAnswer: "three"},
		{ID: "ss-hist-01", Subject: SubjectSocialStudies, Skill: "history", Difficulty: 0.6, Type: TypeMCQ, Prompt: "The Declaration of Independence was signed in:", Choices: []string{"1607", "1776", "1865", "1920"}, CorrectAnswer: "1776"},
		{ID: "ss-hist-02", Subject: SubjectSocialStudies, Skill: "history", Difficulty: 1.0, Type: TypeMCQ, Prompt: "The Industrial Revolution began in:", Choices: []string{"Great Britain", "Japan", "Egypt", "Australia"}, CorrectAnswer: "Great Britain"},
		{ID: "ss-econ-01", Subject: SubjectSocialStudies, Skill: "economics", Difficulty: 1.3, Type: TypeMCQ, Prompt: "When supply rises and demand stays the same, prices tend to:", Choices: []string{"rise", "fall", "stay fixed"}, CorrectAnswer: "fall"},
		{ID: "ss-hist-03", Subject: SubjectSocialStudies, Skill: "history", Difficulty: 1.6, Type: TypeMCQ, Prompt: "The Treaty of Westphalia (1648) is associated with:", Choices: []string{"state sovereignty", "the printing press", "the Silk Road", "women's suffrage"}, CorrectAnswer: "state sovereignty"},
		{ID: "ss-econ-02", Subject: SubjectSocialStudies, Skill: "economics", Difficulty: 1.9, Type: TypeMCQ, Prompt: "Opportunity cost is best defined as:", Choices: []string{"the value of the next best alternative forgone", "the sticker price of a good", "total government spending"}, CorrectAnswer: "the value of the next best alternative forgone"},
		{ID: "ss-map-04", Subject: SubjectSocialStudies, Skill: "geography", Difficulty: 0.8, Type: TypeMap, Prompt: "Which river flows through Egypt?", Choices: []string{"Nile", "Amazon", "Danube", "Mississippi"}, CorrectAnswer: "Nile"},
		{ID: "ss-civ-03", Subject: SubjectSocialStudies, Skill: "civics", Difficulty: 2.0, Type: TypeMCQ, Prompt: "Judicial review was established by:", Choices: []string{"Marbury v. Madison", "Plessy v. Ferguson", "Roe v. Wade", "Brown v. Board"}, CorrectAnswer: "Marbury v. Madison"},
	},
}
