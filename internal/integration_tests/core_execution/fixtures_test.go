package integration_tests

// Shared manifest fixtures for this package. They mirror the manifests the
// core modules ship with, so these tests exercise the same contracts the
// real binary loads from disk.
const sumManifestHCL = `
	runner "sum" {
		description = "Adds two configured addends and prints the full equation."

		lifecycle {
			on_run = "OnRunSum"
		}

		input "alpha" {
			type    = number
			default = 1
		}

		input "bravo" {
			type    = number
			default = 2
		}

		output "sum" {
			type = number
		}
	}
`

const printManifestHCL = `
	runner "print" {
		description = "Prints a map of labeled values, sorted by key."

		lifecycle {
			on_run = "OnRunPrint"
		}

		input "value" {
			type = map(string)
		}
	}
`
