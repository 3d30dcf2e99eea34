package render

// defaultTemplates is the built-in English template bank. Keys
// follow the affirmative/negated naming convention: each matcher
// kind registers one template for its failure message and one
// for its negated failure message.
var defaultTemplates = map[string]string{
	"equaled":           "{0} equaled {1}",
	"didNotEqual":       "{0} did not equal {1}",
	"was":               "{0} was {1}",
	"wasNot":            "{0} was not {1}",
	"wasPlusOrMinus":    "{0} was {1} plus or minus {2}",
	"wasNotPlusOrMinus": "{0} was not {1} plus or minus {2}",

	"containedAtLeastOneOf": "{0} contained at least one of {1}",
	"didNotContainAtLeastOneOf": "{0} did not contain " +
		"at least one of {1}",
	"containedOneElementOf": "{0} contained one element of {1}",
	"didNotContainOneElementOf": "{0} did not contain " +
		"one element of {1}",
	"containedAtLeastOneElementOf": "{0} contained " +
		"at least one element of {1}",
	"didNotContainAtLeastOneElementOf": "{0} did not contain " +
		"any element of {1}",
	"containedAllElementsOf": "{0} contained " +
		"all elements of {1}",
	"didNotContainAllElementsOf": "{0} did not contain " +
		"all elements of {1}",

	"wasNotACollection": "{0} was not a collection",

	"allInspectionFailed": "'all' inspection failed, because: \n" +
		"  at index {0}, {1} ({2}) \n" +
		"in {3}",
	"quantifierInspectionFailed": "'{0}' inspection failed, " +
		"because it matched {1} elements in {2}",
	"quantifierInspectionPassed": "'{0}' inspection passed, " +
		"because it matched {1} elements in {2}",
}
