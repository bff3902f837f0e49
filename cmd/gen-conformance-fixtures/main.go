// Command gen-conformance-fixtures regenerates conformance/fixtures.json, a
// file of wire vectors (script/transaction encoding, Carbon TxMsg
// encoding, WIF/Ed25519 roundtrips) for downstream tests; no test in this
// module reads it. It is ambient
// test tooling, not part of the library surface.
package main

func main() {
	runGeneratorCLI()
}
