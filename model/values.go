package model

import "github.com/statmeta/cdigen/vocabulary/cdi"

// Structured property values embedded inside nodes. Each carries its own
// @type and marshals through ordinary struct tags.

// ControlledVocabularyEntry wraps a single vocabulary entry value.
type ControlledVocabularyEntry struct {
	Type       string `json:"@type"`
	EntryValue string `json:"entryValue"`
}

// CVE builds a ControlledVocabularyEntry.
func CVE(value string) ControlledVocabularyEntry {
	return ControlledVocabularyEntry{Type: cdi.ClassControlledVocabularyEntry, EntryValue: value}
}

// TypedString wraps literal content.
type TypedString struct {
	Type    string `json:"@type"`
	Content string `json:"content"`
}

// Typed builds a TypedString.
func Typed(content string) TypedString {
	return TypedString{Type: cdi.ClassTypedString, Content: content}
}

// ObjectName carries a variable's technical name.
type ObjectName struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Name builds an ObjectName.
func Name(name string) ObjectName {
	return ObjectName{Type: cdi.ClassObjectName, Name: name}
}

// LabelForDisplay carries a human-readable label.
type LabelForDisplay struct {
	Type            string                    `json:"@type"`
	LocationVariant ControlledVocabularyEntry `json:"locationVariant"`
}

// Label builds a LabelForDisplay.
func Label(label string) LabelForDisplay {
	return LabelForDisplay{Type: cdi.ClassLabelForDisplay, LocationVariant: CVE(label)}
}

// LanguageString is one language-specific rendering of a description.
type LanguageString struct {
	Type    string `json:"@type"`
	Content string `json:"content"`
}

// InternationalString wraps a description with its language renderings.
type InternationalString struct {
	Type                   string         `json:"@type"`
	LanguageSpecificString LanguageString `json:"languageSpecificString"`
}

// Description builds an InternationalString with a single rendering.
func Description(content string) InternationalString {
	return InternationalString{
		Type: cdi.ClassInternationalString,
		LanguageSpecificString: LanguageString{
			Type:    cdi.ClassLanguageString,
			Content: content,
		},
	}
}
