package placement

import "github.com/jkasmommy/brainpod-sub000/internal/itembank"

// bands partitions the [-3, 3] ability range into ordered bands. An
// ability maps to the first band whose upper bound it does not exceed;
// the last band is open-ended.
type band struct {
	max   float64
	label string
}

var bands = []band{
	{-2.5, "Foundation"},
	{-1.5, "Emerging"},
	{-0.5, "Developing"},
	{0.5, "On Track"},
	{1.5, "Progressing"},
	{2.3, "Advanced"},
	{0, "College/Advanced"}, // open-ended
}

func bandIndex(ability float64) int {
	for i := 0; i < len(bands)-1; i++ {
		if ability <= bands[i].max {
			return i
		}
	}
	return len(bands) - 1
}

// GradeUnit is a band's subject-specific recommendation.
type GradeUnit struct {
	Grade string
	Unit  string
}

// Four parallel tables, one per subject, indexed by band.

var mathUnits = []GradeUnit{
	{"K", "counting-and-cardinality"},
	{"1", "addition-within-20"},
	{"2", "place-value-and-regrouping"},
	{"3", "multiplication-and-division"},
	{"5", "fractions-and-decimals"},
	{"7", "ratios-and-proportions"},
	{"College", "precalculus-review"},
}

var readingUnits = []GradeUnit{
	{"K", "letter-sounds"},
	{"1", "phonics-and-decoding"},
	{"2", "fluency-and-sight-words"},
	{"3", "main-idea-and-details"},
	{"5", "inference-and-evidence"},
	{"7", "literary-analysis"},
	{"College", "rhetoric-and-argument"},
}

var scienceUnits = []GradeUnit{
	{"K", "senses-and-observation"},
	{"1", "living-and-nonliving"},
	{"2", "habitats-and-life-cycles"},
	{"3", "matter-and-energy"},
	{"5", "earth-systems"},
	{"7", "cells-and-chemistry"},
	{"College", "physics-foundations"},
}

var socialStudiesUnits = []GradeUnit{
	{"K", "my-community"},
	{"1", "maps-and-globes"},
	{"2", "communities-and-cultures"},
	{"3", "government-basics"},
	{"5", "american-history"},
	{"7", "world-history"},
	{"College", "economics-and-civics"},
}

func unitTable(subject itembank.Subject) []GradeUnit {
	switch subject {
	case itembank.SubjectMath:
		return mathUnits
	case itembank.SubjectReading:
		return readingUnits
	case itembank.SubjectScience:
		return scienceUnits
	case itembank.SubjectSocialStudies:
		return socialStudiesUnits
	default:
		return mathUnits
	}
}
