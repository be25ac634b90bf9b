package diagram

import (
	"maps"
	"slices"
	"strings"

	"github.com/ccu3/archdiagram/pkg/errors"
)

// Qualified kind names for the built-in palette.
const (
	KindAPIGateway = "aws/network/APIGateway"
	KindCloudFront = "aws/network/CloudFront"
	KindLambda     = "aws/compute/Lambda"
	KindEC2        = "aws/compute/EC2"
	KindConnect    = "aws/engagement/Connect"
	KindKinesis    = "aws/analytics/Kinesis"
	KindDynamodb   = "aws/database/Dynamodb"
	KindRDS        = "aws/database/RDS"
	KindS3         = "aws/storage/S3"
	KindSQS        = "aws/integration/SQS"
	KindSNS        = "aws/integration/SNS"
	KindUsers      = "onprem/client/Users"
	KindUser       = "onprem/client/User"
	KindClient     = "onprem/client/Client"
	KindVue        = "programming/framework/Vue"
	KindReact      = "programming/framework/React"
	KindDjango     = "programming/framework/Django"
)

// Kind is one entry of the closed node palette. The provider/category/name
// triple identifies it; the remaining fields are the Graphviz treatment used
// in place of an icon image.
type Kind struct {
	Provider string
	Category string
	Name     string

	Shape     string
	FillColor string
	FontColor string
}

// String returns the qualified "provider/category/name" form.
func (k Kind) String() string {
	return k.Provider + "/" + k.Category + "/" + k.Name
}

func (k Kind) attrs() map[string]string {
	return map[string]string{
		"shape":     k.Shape,
		"style":     "rounded,filled",
		"fillcolor": k.FillColor,
		"fontcolor": k.FontColor,
		"tooltip":   k.String(),
	}
}

// AWS category colors follow the published architecture icon set.
const (
	colorAWSCompute     = "#ED7100"
	colorAWSNetwork     = "#8C4FFF"
	colorAWSAnalytics   = "#8C4FFF"
	colorAWSDatabase    = "#C925D1"
	colorAWSStorage     = "#7AA116"
	colorAWSIntegration = "#E7157B"
	colorAWSEngagement  = "#DD344C"
	colorOnPrem         = "#D5DBDB"
	colorFontLight      = "#FFFFFF"
	colorFontDark       = "#2D3436"
)

var palette = buildPalette(
	Kind{"aws", "network", "APIGateway", "box", colorAWSNetwork, colorFontLight},
	Kind{"aws", "network", "CloudFront", "box", colorAWSNetwork, colorFontLight},
	Kind{"aws", "compute", "Lambda", "box", colorAWSCompute, colorFontLight},
	Kind{"aws", "compute", "EC2", "box", colorAWSCompute, colorFontLight},
	Kind{"aws", "engagement", "Connect", "box", colorAWSEngagement, colorFontLight},
	Kind{"aws", "analytics", "Kinesis", "box", colorAWSAnalytics, colorFontLight},
	Kind{"aws", "database", "Dynamodb", "cylinder", colorAWSDatabase, colorFontLight},
	Kind{"aws", "database", "RDS", "cylinder", colorAWSDatabase, colorFontLight},
	Kind{"aws", "storage", "S3", "cylinder", colorAWSStorage, colorFontLight},
	Kind{"aws", "integration", "SQS", "box", colorAWSIntegration, colorFontLight},
	Kind{"aws", "integration", "SNS", "box", colorAWSIntegration, colorFontLight},
	Kind{"onprem", "client", "Users", "tab", colorOnPrem, colorFontDark},
	Kind{"onprem", "client", "User", "tab", colorOnPrem, colorFontDark},
	Kind{"onprem", "client", "Client", "component", colorOnPrem, colorFontDark},
	Kind{"programming", "framework", "Vue", "box", "#41B883", colorFontLight},
	Kind{"programming", "framework", "React", "box", "#61DAFB", colorFontDark},
	Kind{"programming", "framework", "Django", "box", "#0C4B33", colorFontLight},
)

func buildPalette(kinds ...Kind) map[string]Kind {
	m := make(map[string]Kind, len(kinds))
	for _, k := range kinds {
		m[k.String()] = k
	}
	return m
}

// LookupKind resolves a qualified kind name against the palette.
// Lookup is case-sensitive, matching the icon class names it mirrors.
func LookupKind(name string) (Kind, error) {
	if k, ok := palette[name]; ok {
		return k, nil
	}
	if strings.Count(name, "/") != 2 {
		return Kind{}, errors.New(errors.ErrCodeUnknownKind, "unknown node kind %q (want provider/category/name)", name)
	}
	return Kind{}, errors.New(errors.ErrCodeUnknownKind, "unknown node kind %q", name)
}

// Kinds returns the full palette sorted by qualified name.
func Kinds() []Kind {
	names := slices.Sorted(maps.Keys(palette))
	out := make([]Kind, len(names))
	for i, n := range names {
		out[i] = palette[n]
	}
	return out
}
