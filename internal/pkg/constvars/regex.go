package constvars

// Syntactic only, no calendar validation: 2023-02-30 passes.
const RegexFhirDate = `^\d{4}-\d{2}-\d{2}$`
