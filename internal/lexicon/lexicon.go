// Package lexicon holds the static trigger-word sets the dialog engine
// classifies against. Pure data plus membership tests, no state.
package lexicon

import "strings"

var greetings = []string{
	"hi", "hello", "hey", "greetings", "good morning", "good afternoon",
	"good evening", "what's up", "howdy", "yo",
}

var farewells = []string{
	"bye", "thankyou", "thanks", "thank you", "thank you so much", "tq",
}

var termBuckets = map[string][]string{
	"symptoms": {
		"headache", "fever", "cough", "shortness of breath", "fatigue",
		"chest pain", "dizziness", "nausea", "vomiting", "diarrhea",
		"abdominal pain", "sore throat", "runny nose", "muscle pain",
	},
	"conditions": {
		"diabetes", "hypertension", "asthma", "covid-19", "flu",
		"cold", "arthritis", "cancer", "migraine", "pneumonia",
		"tuberculosis", "depression", "anxiety", "eczema", "insomnia",
	},
	"medications": {
		"paracetamol", "ibuprofen", "amoxicillin", "metformin",
		"insulin", "atorvastatin", "omeprazole", "aspirin",
		"azithromycin", "cetirizine",
	},
	"bodyParts": {
		"heart", "lungs", "kidneys", "liver", "stomach",
		"brain", "intestines", "skin", "eyes", "throat",
	},
	"diagnostics": {
		"blood test", "x-ray", "mri", "ct scan", "ecg",
		"urine test", "biopsy", "ultrasound",
	},
	"firstAid": {
		"cpr", "burn treatment", "wound care", "choking first aid",
		"fracture support", "bleeding control",
	},
	"specialists": {
		"cardiologist", "neurologist", "dermatologist", "gynecologist",
		"pediatrician", "orthopedic", "psychiatrist", "oncologist",
	},
	"medicalProcedures": {
		"surgery", "chemotherapy", "radiation therapy", "dialysis",
		"vaccination", "endoscopy", "transplant", "physical therapy",
	},
	"lifestyle": {
		"diet for diabetes", "exercise for weight loss", "yoga for anxiety",
		"healthy sleep habits", "stress management",
	},
	"others": {
		"side effects", "allergy", "covid vaccine", "health insurance",
		"medical emergency", "nearest hospital", "home remedies",
	},
}

// allTerms is the flattened, lowercased union of every bucket.
var allTerms = flatten(termBuckets)

func flatten(buckets map[string][]string) []string {
	var terms []string
	for _, bucket := range buckets {
		for _, term := range bucket {
			terms = append(terms, strings.ToLower(term))
		}
	}
	return terms
}

// Normalize lowercases and trims a message the way every membership test
// expects it.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// IsGreeting reports whether the normalized message is exactly one of the
// known greeting phrases. A greeting buried inside a longer sentence does
// not count.
func IsGreeting(text string) bool {
	return containsExact(greetings, Normalize(text))
}

// IsFarewell reports whether the normalized message is exactly one of the
// known closing phrases.
func IsFarewell(text string) bool {
	return containsExact(farewells, Normalize(text))
}

// ContainsMedicalTerm reports whether any known medical vocabulary entry
// occurs as a substring of the normalized message.
func ContainsMedicalTerm(text string) bool {
	normalized := Normalize(text)
	for _, term := range allTerms {
		if strings.Contains(normalized, term) {
			return true
		}
	}
	return false
}

func containsExact(set []string, normalized string) bool {
	for _, entry := range set {
		if entry == normalized {
			return true
		}
	}
	return false
}
