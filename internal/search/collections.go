package search

import "github.com/nationalarchives/catalogue-search/pkg/forms"

// collectionChoices supplies display labels for the most common
// collection (lettercode) values. The list is not exhaustive and is
// never used to validate input: the API serves collections beyond it,
// and unknown values fall back to their raw lettercode.
var collectionChoices = []forms.Choice{
	{Value: "ADM", Label: "Admiralty, Navy, Royal Marines, and Coastguard"},
	{Value: "AIR", Label: "Air Ministry and Royal Air Force records"},
	{Value: "BT", Label: "Board of Trade and successors"},
	{Value: "CO", Label: "Colonial Office, Commonwealth and Foreign and Commonwealth Offices"},
	{Value: "FO", Label: "Foreign Office"},
	{Value: "HO", Label: "Home Office"},
	{Value: "PROB", Label: "Prerogative Court of Canterbury"},
	{Value: "RAIL", Label: "Pre-nationalisation railway companies"},
	{Value: "T", Label: "Treasury"},
	{Value: "WO", Label: "War Office, Armed Forces, Judge Advocate General"},
}
