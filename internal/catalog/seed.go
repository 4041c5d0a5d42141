package catalog

// Seed catalog. Units without authored lessons fall back to synthesized
// lesson ids decorated with FindOrDefault metadata.

var units = map[string][]string{
	"math/multiplication-and-division": {"math-mult-arrays", "math-mult-facts", "math-div-sharing", "math-div-remainders"},
	"math/fractions-and-decimals":      {"math-frac-models", "math-frac-compare", "math-dec-place-value", "math-frac-dec-convert"},
	"reading/main-idea-and-details":    {"read-main-idea", "read-supporting-details", "read-summarizing"},
	"reading/inference-and-evidence":   {"read-inference-intro", "read-text-evidence", "read-author-purpose"},
	"science/matter-and-energy":        {"sci-states-of-matter", "sci-energy-forms", "sci-heat-transfer"},
	"social-studies/government-basics": {"ss-three-branches", "ss-rights-responsibilities", "ss-how-laws-pass"},
}

var lessons = map[string]LessonMeta{
	"math-mult-arrays":       {LessonID: "math-mult-arrays", Title: "Multiplication with Arrays", Minutes: 12, Standards: []string{"3.OA.A.1"}, Difficulty: -0.2, Skills: []string{"multiplication"}},
	"math-mult-facts":        {LessonID: "math-mult-facts", Title: "Multiplication Facts to 100", Minutes: 10, Standards: []string{"3.OA.C.7"}, Difficulty: 0.0, Skills: []string{"multiplication"}},
	"math-div-sharing":       {LessonID: "math-div-sharing", Title: "Division as Equal Sharing", Minutes: 12, Standards: []string{"3.OA.A.2"}, Difficulty: 0.1, Skills: []string{"division"}},
	"math-div-remainders":    {LessonID: "math-div-remainders", Title: "Division with Remainders", Minutes: 15, Standards: []string{"4.NBT.B.6"}, Difficulty: 0.4, Skills: []string{"division"}},
	"math-frac-models":       {LessonID: "math-frac-models", Title: "Fractions with Visual Models", Minutes: 12, Standards: []string{"3.NF.A.1"}, Difficulty: 0.5, Skills: []string{"fractions"}},
	"math-frac-compare":      {LessonID: "math-frac-compare", Title: "Comparing Fractions", Minutes: 12, Standards: []string{"4.NF.A.2"}, Difficulty: 0.8, Skills: []string{"fractions"}},
	"math-dec-place-value":   {LessonID: "math-dec-place-value", Title: "Decimal Place Value", Minutes: 10, Standards: []string{"5.NBT.A.3"}, Difficulty: 1.0, Skills: []string{"decimals"}},
	"math-frac-dec-convert":  {LessonID: "math-frac-dec-convert", Title: "Fractions and Decimals", Minutes: 15, Standards: []string{"4.NF.C.6"}, Difficulty: 1.1, Skills: []string{"fractions", "decimals"}},
	"read-main-idea":         {LessonID: "read-main-idea", Title: "Finding the Main Idea", Minutes: 10, Standards: []string{"RI.3.2"}, Difficulty: 0.0, Skills: []string{"comprehension"}},
	"read-supporting-details": {LessonID: "read-supporting-details", Title: "Supporting Details", Minutes: 10, Standards: []string{"RI.3.2"}, Difficulty: 0.2, Skills: []string{"comprehension"}},
	"read-summarizing":       {LessonID: "read-summarizing", Title: "Summarizing a Text", Minutes: 12, Standards: []string{"RI.4.2"}, Difficulty: 0.4, Skills: []string{"comprehension"}},
	"read-inference-intro":   {LessonID: "read-inference-intro", Title: "Making Inferences", Minutes: 12, Standards: []string{"RL.5.1"}, Difficulty: 0.7, Skills: []string{"comprehension"}},
	"read-text-evidence":     {LessonID: "read-text-evidence", Title: "Citing Text Evidence", Minutes: 12, Standards: []string{"RI.5.1"}, Difficulty: 0.8, Skills: []string{"comprehension"}},
	"read-author-purpose":    {LessonID: "read-author-purpose", Title: "Author's Purpose", Minutes: 10, Standards: []string{"RI.5.8"}, Difficulty: 0.9, Skills: []string{"comprehension"}},
	"sci-states-of-matter":   {LessonID: "sci-states-of-matter", Title: "States of Matter", Minutes: 12, Standards: []string{"2-PS1-1"}, Difficulty: 0.0, Skills: []string{"physical-science"}},
	"sci-energy-forms":       {LessonID: "sci-energy-forms", Title: "Forms of Energy", Minutes: 12, Standards: []string{"4-PS3-2"}, Difficulty: 0.3, Skills: []string{"physical-science"}},
	"sci-heat-transfer":      {LessonID: "sci-heat-transfer", Title: "Heat Transfer", Minutes: 15, Standards: []string{"MS-PS3-3"}, Difficulty: 0.7, Skills: []string{"physical-science"}},
	"ss-three-branches":      {LessonID: "ss-three-branches", Title: "Three Branches of Government", Minutes: 12, Standards: []string{"C3.D2.Civ.1"}, Difficulty: 0.2, Skills: []string{"civics"}},
	"ss-rights-responsibilities": {LessonID: "ss-rights-responsibilities", Title: "Rights and Responsibilities", Minutes: 10, Standards: []string{"C3.D2.Civ.8"}, Difficulty: 0.3, Skills: []string{"civics"}},
	"ss-how-laws-pass":       {LessonID: "ss-how-laws-pass", Title: "How a Bill Becomes a Law", Minutes: 15, Standards: []string{"C3.D2.Civ.3"}, Difficulty: 0.5, Skills: []string{"civics"}},
}
