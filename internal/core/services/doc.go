// Package services implements the application's driving ports: the tool
// profile registry, the index rebuild pipeline and prompt assembly.
//
// Services depend only on domain types and port interfaces. Adapters
// are injected at construction; nothing here touches the filesystem or
// the network directly.
package services
