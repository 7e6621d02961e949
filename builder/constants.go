// Package builder defines shared constants used by the stimulus generators.
package builder

// Method names used to prefix errors with the constructor name for context.
const (
	MethodBuildGraph    = "BuildGraph"
	MethodPlain         = "Plain"
	MethodLayered       = "Layered"
	MethodSubnetworks   = "Subnetworks"
	MethodSocialNetwork = "SocialNetwork"
)

// Density bounds accepted by every generator.
const (
	MinDensity = 0.0
	MaxDensity = 1.0
)

// Integer attribute range used by the layered and subnetwork modes.
const (
	MinIntAttribute = 1
	MaxIntAttribute = 20
)

// Attribute key formats; %d is the 1-based attribute index.
const (
	AttributeKeyFormat   = "Attribute %d"
	SubnetworkKeyFormat  = "attr%d"
	MaxSocialNameLength  = 7
	fractionalValueCount = 6
	fractionalValueStep  = 0.2
)

// Friendship attributes carried by every SocialNetwork edge.
const (
	YearsOfFriendship   = "Years of Friendship"
	Distance            = "Distance"
	InteractionsPerWeek = "Interactions per Week"
	CommonHobbies       = "Common Hobbies"
)

// FriendshipAttributes lists the social edge attributes in draw order.
var FriendshipAttributes = []string{YearsOfFriendship, Distance, InteractionsPerWeek, CommonHobbies}

// FractionalValues returns the six evenly spaced attribute values
// {0, 0.2, 0.4, 0.6, 0.8, 1.0}.
func FractionalValues() []float64 {
	out := make([]float64, fractionalValueCount)
	for i := range out {
		// i*2/10 keeps the values exact decimals (0.6, not 0.6000000000000001).
		out[i] = float64(i*2) / 10
	}
	return out
}
