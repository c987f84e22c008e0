package links

import "fmt"

// Kind identifies one of the nine link strategies.
type Kind int

const (
	KindLinks Kind = iota
	KindEvolvingEndLinks
	KindEvolvingToNoneEvolvingEndLinks
	KindEvolvedToEvolving
	KindBothEvolved
	KindEvolveStartLinks
	KindBothEvolving
	KindEvolveToEvolved
	KindAnchorLinks
)

// Kinds lists every strategy in evaluation order.
var Kinds = []Kind{
	KindLinks,
	KindEvolvingEndLinks,
	KindEvolvingToNoneEvolvingEndLinks,
	KindEvolvedToEvolving,
	KindBothEvolved,
	KindEvolveStartLinks,
	KindBothEvolving,
	KindEvolveToEvolved,
	KindAnchorLinks,
}

var kindNames = map[Kind]string{
	KindLinks:                          "links",
	KindEvolvingEndLinks:               "evolvingEndLinks",
	KindEvolvingToNoneEvolvingEndLinks: "evolvingToNoneEvolvingEndLinks",
	KindEvolvedToEvolving:              "evolvedToEvolving",
	KindBothEvolved:                    "bothEvolved",
	KindEvolveStartLinks:               "evolveStartLinks",
	KindBothEvolving:                   "bothEvolving",
	KindEvolveToEvolved:                "evolveToEvolved",
	KindAnchorLinks:                    "anchorLinks",
}

// Name returns the strategy's bucket name.
func (k Kind) Name() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) String() string { return k.Name() }

// ParseKind looks a strategy up by its bucket name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown link strategy %q", name)
}
