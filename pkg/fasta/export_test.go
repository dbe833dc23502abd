package fasta

// ParseReader lets the tests feed Parse from a reader that breaks.
var ParseReader = parse
