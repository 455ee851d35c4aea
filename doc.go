// Package csvfixture loads data-driven test fixtures from delimited text,
// Excel (XLSX) and Parquet files and decodes them into parameter tuples for
// table-driven tests.
//
// It was written for acceptance suites that drive a time-series database
// through its client: session and table tests, schema templates, inserts and
// SQL statement fixtures all read their inputs and expectations from files.
//
// # Features
//
//   - Escape-aware delimited text: configurable delimiter, double-quote
//     quoting, backslash escapes, blank lines skipped
//   - Header row always dropped; rows whose first cell starts with "#" are comments
//   - A small cell grammar for absent values, lists and mappings
//   - Automatic handling of compressed files (gzip, bzip2, xz, zstandard)
//   - Fixtures from the OS filesystem or any fs.FS, including embed.FS
//   - Typed schema rows (data type, encoding, compression)
//   - Concurrent loading of whole fixture directories
//
// # Cell Grammar
//
// Every cell is decoded by the first matching rule:
//
//	m:<body>   mapping   "m:k1:v1|k2:v2", "m:empty", "m:null"
//	l:<body>   list      "l:a,b,c", "l:empty", "l:null", "l:m:a:1,m:b:2"
//	null       absent value
//	anything   plain text
//
// "null" bodies decode to nil containers and "empty" bodies to non-nil
// zero-length ones, so tests can tell them apart.
//
// # Basic Usage
//
//	loader := csvfixture.NewLoader("testdata")
//	tuples, err := loader.Load("insert_tablet.csv", ',')
//	if err != nil {
//		t.Fatal(err)
//	}
//	cases, err := tuples.Collect()
//	if err != nil {
//		t.Fatal(err)
//	}
//	for _, tc := range cases {
//		t.Run(tc[0].Text(), func(t *testing.T) {
//			...
//		})
//	}
//
// # Specialized Loaders
//
//   - LoadStrings: raw cells, no grammar
//   - LoadTableFormat: RFC 4180 rows, optionally kept raw for SQL statements
//   - LoadKeyedAttributes: one mapping per row, for tag and attribute fixtures
//   - LoadTypeStructures: five-column schema rows
//   - FirstColumn and FirstAndSecondJoined: identifier lists
//
// # Error Handling
//
// Every failure aborts the load call. Missing files wrap ErrFixtureNotFound,
// grammar violations wrap model.ErrMalformedCell and unknown schema tokens
// are *model.VocabularyError values wrapping model.ErrUnrecognizedToken.
// Errors name the fixture and the data row.
package csvfixture
