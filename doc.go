// Package prophoto implements the RIMM, ROMM and ERIMM encodings used in
// photographic colour pipelines: the opto-electronic transfer functions
// (OETF) mapping linear scene exposure to code values, and their
// electro-optical inverses (EOTF). ROMM RGB is marketed as ProPhoto RGB;
// the curves are provided under both names.
//
// Every function has a scalar form and a shape-preserving Array form. The
// formulas follow ANSI/I3A IT10.7666 and Spaulding, Woolfe & Giorgianni
// (2000), "Reference Input/Output Medium Metric RGB Color Encodings".
//
// Reference camera spectral sensitivity datasets live in the dslr
// subpackage.
package prophoto
