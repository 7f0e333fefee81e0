package pattern

import "sort"

type converterFactory func(option string, hasOption bool) (Converter, error)

// converters is the closed set of converter names and their aliases
var converters = map[string]converterFactory{
	"c": newLoggerConverter, "lo": newLoggerConverter, "logger": newLoggerConverter,
	"d": newDateConverter, "date": newDateConverter,
	"m": newMessageConverter, "msg": newMessageConverter, "message": newMessageConverter,
	"p": newLevelConverter, "le": newLevelConverter, "level": newLevelConverter,
	"n": newNewlineConverter, "newline": newNewlineConverter,
	"F": newFileConverter, "file": newFileConverter,
	"L": newLineConverter, "line": newLineConverter,
	"M": newMethodConverter, "method": newMethodConverter,
	"l": newLocationConverter, "location": newLocationConverter,
	"t": newProcessConverter, "pid": newProcessConverter, "process": newProcessConverter,
	"r": newRelativeConverter, "relative": newRelativeConverter,
	"X": newMDCConverter, "mdc": newMDCConverter,
	"f": newFieldsConverter, "fields": newFieldsConverter,
	"ex": newExceptionConverter, "exception": newExceptionConverter, "throwable": newExceptionConverter,
	"e": newEnvConverter, "env": newEnvConverter,
}

// Names returns every converter name and alias accepted by Compile
func Names() []string {
	names := make([]string, 0, len(converters))
	for name := range converters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
