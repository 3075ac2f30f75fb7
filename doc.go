// Package multilan is the composition root of the multilan translation
// resolution engine.
//
// It wires the catalog loader (filesystem pages by default), the format
// adapters and the engine packages into a catalog.Service.
//
// The engine resolves free text and IDs against a multilingual catalog:
//
//   - format adapters normalize upstream payloads (flat record lists and
//     paginated search responses) into one canonical model;
//   - search ranks entries by ID and wording similarity;
//   - linking classifies items as exact, close or unmatched, detects the
//     language a set of items is shown in and plans language switches;
//   - variables handles ###name### template tokens.
//
// Usage:
//
//	svc, err := multilan.New("./catalog",
//		multilan.WithLogger(logger),
//		multilan.WithFuzzyThreshold(0.3),
//	)
//
//	hits, err := svc.GlobalSearch("Submit")
package multilan
