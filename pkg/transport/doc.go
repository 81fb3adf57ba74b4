// Package transport moves LIFX LAN packets over UDP.
//
// Conn owns the socket: it encodes outgoing messages, decodes incoming
// ones and hands every decoded packet to a Handler. Registry keeps a
// view of the devices seen on the network, built from the State
// messages they send. Client ties the two together and adds
// discovery and the common control operations.
//
// LIFX devices listen on UDP port 56700. Discovery is a tagged
// GetService broadcast; every device answers with StateService from
// its own address, which is how the Registry learns where devices
// live.
package transport
