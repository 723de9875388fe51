// Package ini provides an INI parser implementation for the config package.
//
// Documents are decoded with package document, so section headers are section paths and
// values are typed literals:
//
//	[server]
//	host = api.example.com
//	port = 8080
//
//	[server.tls]
//	ciphers = ["TLS_AES_128_GCM_SHA256"]
//
// Usage:
//
//	parser := ini.NewParser()
//	var cfg TLSConfig
//	err := parser.Parse(data, &cfg, "server.tls")
//
// Path handling:
//   - Empty path "" -> unmarshal entire document
//   - Section path "server.tls" -> the [server.tls] section
//   - Quoted segments "remote.'my.host'" -> a key containing the separator
//   - A path whose last segment names a value -> that single value
package ini
