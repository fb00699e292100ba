// Package tables loads, validates and compiles the matching tables: the
// skill vocabulary, the category weights used to rank missing skills, and
// the company alias table.
//
// Tables are plain YAML so they can be reviewed and tuned without a rebuild.
// A default set is embedded in the binary and returned by Default.
//
// # Schema Overview
//
//	version: "1"
//	categories:
//	  - name: language
//	    weight: 100
//	  - name: cloud
//	    weight: 80
//	skills:
//	  - name: Node.js
//	    category: framework
//	    aliases: [nodejs, node js]
//	  - name: Lambda
//	    category: cloud
//	    aliases: aws lambda          # a single alias may be a plain string
//	companies:
//	  aliases:
//	    cts: [Cognizant, Cognizant Technology Solutions]
//	    ibm: International Business Machines
//
// # Validation
//
// Validate reports structured diagnostics:
//   - errors: unsupported version, empty or duplicate names, unknown
//     categories, a spelling shared by two skills, empty alias keys/targets
//   - warnings: repeated aliases, alias keys listing themselves
//   - infos: declared categories with no skills
//
// Build validates and compiles a File into ready-to-inject matcher inputs.
package tables
