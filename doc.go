/*
Package mgbloom implements a multi-grain Bloom filter: one logical filter
backed by several grains, each tracking addresses at its own granularity
(cache line, page, region).

Set, Unset and Clear go to every grain. IsSet is a threshold vote: the
address is reported present when at least Threshold grains report it.
Count and TotalCount add up the grains' answers.

	f, err := mgbloom.New([]mgbloom.GrainConfig{
		mgbloom.BlockConfig{Size: 4096, OffsetBits: 6},
		mgbloom.HashConfig{Size: 8192, Hashes: 3, OffsetBits: 12},
	}, 2)

Grains are plain implementations of the Grain interface; BlockGrain,
HashGrain, CountingGrain and ExactGrain are provided. Two filters can be
merged when they were built from the same configs.
*/
package mgbloom
