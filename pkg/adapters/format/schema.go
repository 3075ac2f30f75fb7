package format

import (
	"errors"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/aretw0/multilan/pkg/core"
)

const recordDefs = `"$defs": {
	"record": {
		"type": "object",
		"required": ["id", "multilanTextList"],
		"properties": {
			"id": {"type": "integer"},
			"multilanTextList": {"type": "array", "items": {"$ref": "#/$defs/text"}}
		}
	},
	"text": {
		"type": "object",
		"properties": {
			"id": {"type": ["integer", "null"]},
			"languageId": {"type": ["integer", "null"]},
			"languageCode": {"type": ["string", "null"]},
			"wording": {"type": ["string", "null"]},
			"status": {"type": ["string", "null"]},
			"modifiedBy": {"type": ["string", "null"]},
			"sourceLanguageId": {"type": ["integer", "null"]}
		}
	}
}`

var listSchema = mustCompile("multilan-list.json", `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {"$ref": "#/$defs/record"},
	`+recordDefs+`
}`)

var pageSchema = mustCompile("multilan-page.json", `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["resultList"],
	"properties": {
		"resultList": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["multilan"],
				"properties": {
					"multilan": {"$ref": "#/$defs/record"},
					"mostRelevantMultilanTextId": {"type": ["integer", "null"]}
				}
			}
		},
		"pageNumber": {"type": "integer"},
		"pageSize": {"type": "integer"},
		"numberOfElements": {"type": "integer"},
		"totalElements": {"type": "integer"},
		"totalPages": {"type": "integer"}
	},
	`+recordDefs+`
}`)

func mustCompile(name, src string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(name, strings.NewReader(src)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(name)
}

// validate checks p against schema and reports a *core.FormatError on mismatch.
func validate(schema *jsonschema.Schema, p Payload, name, expected string) error {
	err := schema.Validate(p.Value())
	if err == nil {
		return nil
	}
	return &core.FormatError{Format: name, Expected: expected, Issues: issues(err)}
}

func issues(err error) []string {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []string{err.Error()}
	}
	var out []string
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			loc := node.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			out = append(out, "#"+loc+": "+node.Message)
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(verr)
	return out
}
