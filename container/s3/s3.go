package s3

// Placeholder for an S3 backed Container implementation.
//
// Intent: durable plot storage in an AWS S3 (or compatible) bucket behind the
// core.Container interface. The delicate part is the Keys contract: bucket
// listings are lexicographic, so first-write order needs an explicit index
// object (the redis backend's scored index translates to a small JSON index
// updated on first Put of each key). This file intentionally remains a stub
// so that downstream contributors can supply credentials / client wiring
// without pulling an AWS dependency into minimal builds. If you implement
// this, keep the dependency surface narrow and make the configuration
// (bucket, prefix, encryption) explicit via a small Config struct.
