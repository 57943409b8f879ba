// Package stylus converts and merges fund portfolios stored in Excel workbooks into the
// layout expected by the Stylus portfolio analysis software.
//
// A portfolio is a [Table] of funds with their weights at a set of dates. It is read
// from a sheet in the [Generic] or [Stylus] layout with [Load], optionally merged into
// another portfolio with [Merge], given up-to-date Stylus [Metadata] with
// [UpdateMetadata], and written back in the Stylus layout with [Write].
//
// The Stylus layout is:
//
//	        A            B                 C                  D           E
//	1  MPI_ASSETIDRANGE  MPI_LABELRANGE    MPI_ASSETDBIDRANGE ...
//	2  A5:A6             B5:B6             C5:C6              ...
//	3
//	4                                                         2018-01-01  2018-02-01
//	5  FOUSA1            MStarFund         MfX                10          45.678
//	6  012345            eVestFund         eVa                0           0
//
// [Run] chains all the steps, it is the engine of the spu command.
package stylus
