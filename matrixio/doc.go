// Package matrixio reads and prints matrices in the comma-separated text
// format used by every symnmf command.
//
// 📄 Format
//
//	one row per line, values separated by ',', no header
//	0.1234,5.0000
//	-1.0000,2.5000
//
// Print writes every value with four decimals, so print → read → print is
// stable at that precision.
//
// 📦 Sources
//
// Open and Load resolve a source string:
//
//	/path/points.txt           local file
//	s3://bucket/key/points.txt S3-compatible object store (minio-go)
//
// and transparently decompress by extension:
//
//	.gz   gzip  (klauspost/compress/gzip)
//	.zst  zstd  (klauspost/compress/zstd)
//	.lz4  lz4 frame (pierrec/lz4/v4)
//
// 🔗 Join
//
// JoinByKey merges two matrices on their first column the way the K-means++
// command combines its two input files: inner join, ascending by key, key
// column dropped.
package matrixio
