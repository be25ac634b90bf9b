// Package io exports the structure of a built diagram as JSON or YAML.
//
// # Overview
//
// A [Snapshot] captures everything the diagram declares, minus rendering:
// nodes with their kind and cluster path, clusters with their parent, and
// edges with direction and visual attributes. It serves two purposes:
//
//   - structural snapshot tests that compare a build against the literal
//     description without depending on Graphviz output
//   - the inspect command, which prints the structure for review
//
// # Format
//
//	{
//	  "title": "CC3 AWS Connect High Level Architecture",
//	  "direction": "BT",
//	  "nodes": [
//	    {"id": "4c1d...", "kind": "aws/engagement/Connect", "label": "Connect"}
//	  ],
//	  "clusters": [
//	    {"id": "cluster_9a0f...", "label": "CCU3 awsconnect", "depth": 0}
//	  ],
//	  "edges": [
//	    {"from": "CCU3 Api", "to": "Connect", "dir": "forward",
//	     "attrs": {"color": "green", "label": "Agent\nConfirm\nPrompt", "style": "dashed"}}
//	  ]
//	}
//
// Edges refer to node labels for readability and carry from_id/to_id for
// unambiguous matching, since labels need not be unique.
package io
