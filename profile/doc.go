/*Package profile implements an in-memory store for clonal copy-number-variant
  (CNV) profiles: per simulated clone, a set of named genomic regions with
  allele-specific copy numbers, indexed for interval-overlap and region-ID
  lookup.
  (Note that unlike an interval-union, overlapping regions are tracked
  separately, never merged; the same coordinates may appear under several
  region IDs and clones.)
  Regions are stored half-open, [start, end), with 1-based starts.  The
  profile TSV format exchanged with other tools is 1-based with inclusive
  ends; ReadProfile and WriteProfile perform the conversion.
*/
package profile
