// Package architecture holds the CC3 AWS Connect high level architecture
// diagram: the websocket gateway with its connection, messaging and stream
// lambdas, the clients database, the Connect instance and its streams, and
// the web and API front ends.
package architecture

import (
	"context"

	"github.com/ccu3/archdiagram/pkg/diagram"
)

const (
	// Title is the diagram label.
	Title = "CC3 AWS Connect High Level Architecture"
	// Filename is the output basename; the default format makes it architecture.svg.
	Filename = "architecture"
)

// Edge styles shared by the trails below.
var (
	streamEdge      = diagram.Attrs{Color: "blue", Style: "bold"}
	apiEdge         = diagram.Attrs{Color: "firebrick", Style: "bold"}
	integrationEdge = diagram.Attrs{Color: "orange", Style: "bold"}
	inboundEdge     = diagram.Attrs{Color: "brown", Style: "bold"}
	outboundEdge    = diagram.Attrs{Color: "green", Style: "bold"}
	confirmEdge     = diagram.Attrs{Label: "Agent\nConfirm\nPrompt", Color: "green", Style: "dashed"}
)

// Options returns the fixed render options for the diagram, writing into dir.
func Options(dir string) diagram.Options {
	return diagram.Options{
		Name:      Title,
		Filename:  Filename,
		Dir:       dir,
		Format:    diagram.FormatSVG,
		Direction: diagram.BottomToTop,
		GraphAttr: map[string]string{"pad": "3.0"},
	}
}

// Build declares the diagram's nodes, clusters and edges.
func Build(d *diagram.Diagram) error {
	connect := d.Node(diagram.KindConnect, "Connect")
	connectLambda := d.Node(diagram.KindLambda, "awsConnect")
	web := d.Node(diagram.KindVue, "CCU3 Web")
	api := d.Node(diagram.KindDjango, "CCU3 Api")
	users := d.NodeGroup(diagram.KindUsers, "Users", "Agents")

	var gateway, database *diagram.Node
	d.Cluster("CCU3 awsconnect", func(c *diagram.Cluster) {
		gateway = c.Node(diagram.KindAPIGateway, "Websocket Gateway")
		database = c.Node(diagram.KindDynamodb, "ConnectClientsDB")

		c.Cluster("Websocket Handler", func(c *diagram.Cluster) {
			c.Cluster("Connection", func(c *diagram.Cluster) {
				handlers := c.Numbered(diagram.KindLambda, "$connect", 3)
				d.Chain(gateway).Line(handlers)
				d.Chain(handlers).Forward(database)
			})

			c.Cluster("Messaging", func(c *diagram.Cluster) {
				handlers := c.Numbered(diagram.KindLambda, "$default", 3)
				d.Chain(gateway).Line(handlers)
				d.Chain(handlers).Line(api)
				d.Chain(handlers).Forward(database)
			})

			c.Cluster("Dynamo Streams", func(c *diagram.Cluster) {
				streams := c.NodeGroup(diagram.KindLambda, "Agents", "Contacts", "Metrics")
				d.Chain(database).Forward(streams).Forward(gateway)
			})
		})
	})

	// Users -> Client <-> WebSocket
	client := d.Node(diagram.KindClient, "Client")
	d.Chain(client).Line(users, diagram.Attrs{Style: "dotted"})
	d.Chain(client).Line(web).Both(gateway)

	// Web <-> AWS Streams
	d.Chain(web).Both(d.Node(diagram.KindKinesis, "AWSConnectStreams"), streamEdge).Back(connect, streamEdge)

	// Api -> Connect (Call Agent)
	d.Chain(api).Forward(connect, confirmEdge)

	// Web <-> Api -> DynamoDB
	d.Chain(web).Both(api, apiEdge).Forward(database, apiEdge)

	// Connect -> Integration -> ConnectDB
	d.Chain(database).Back(connectLambda, integrationEdge).Both(connect, integrationEdge)

	// Inbound Contacts Trail
	d.Chain(connect).Back(d.Node(diagram.KindUsers, "Inbound Contacts"), inboundEdge)

	// Outbound Contacts Trail
	outbound := d.Node(diagram.KindUsers, "Outbound Contacts")
	d.Chain(connect).Back(web).Back(api, outboundEdge).Back(outbound, outboundEdge)

	return d.Err()
}

// Run renders the diagram into dir and returns the written path.
func Run(ctx context.Context, dir string) (string, error) {
	return RunWith(ctx, Options(dir))
}

// RunWith renders the diagram with caller-supplied options, typically
// [Options] adjusted by configuration.
func RunWith(ctx context.Context, opts diagram.Options) (string, error) {
	return diagram.Render(ctx, opts, Build)
}
