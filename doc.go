/*
Package jasn parses and formats JASN and JAML, two notations for one typed
data model.

JASN is a brace and bracket notation in the spirit of JSON5: unquoted keys,
trailing commas, line and block comments, multi-radix integers, binary and
timestamp literals. JAML is an indentation notation in the spirit of YAML that
encodes exactly the same values and also accepts JASN's compact [..] and {..}
forms on a single line.

Both parsers produce a value.Value tree, and both formatters accept one:

	v, err := jasn.ParseJASN([]byte(`{ name: "edge", ports: [80, 443] }`))
	if err != nil {
		// err is a *errors.ParseError with a kind and a line and column
	}
	fmt.Print(jasn.FormatJAML(v))
	// name: "edge"
	// ports:
	//   - 80
	//   - 443

Formatting never fails, and parsing the output of either formatter with the
matching parser gives back a value equal to the one formatted.

Application types are converted without reflection through the codecs of
package bind:

	cfg, err := jasn.Unmarshal(data, jasn.JAML, configCodec)

Parse behavior is tuned with ParseOption values such as MaxDepth, and output
with FormatOption values such as Indent, Quotes or InlineCollections.
*/
package jasn
