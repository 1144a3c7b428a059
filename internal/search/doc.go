// Package search holds the catalogue search domain: the bucket and
// aggregation configuration, the TNA and non-TNA search forms, the
// translation of a validated form into API parameters and the
// feedback of API aggregation counts into the form's filter fields.
package search
