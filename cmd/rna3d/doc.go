/*
Rna3d loads the data for RNA 3D structure prediction and writes
submission files.

Usage:
	rna3d [global flags] command [flags]

Commands:
	msa target_id --msa-dir DIR
		read DIR/target_id.MSA.fasta (or .gz, .zst) and list the sequences
	coords target_id --labels FILE
		show the structures a labels file has for a target
	submit --sequences FILE [--predictions FILE] [--targets a,b] [-o FILE]
		write a submission. Predictions are in the labels layout. Without
		them, or for residues they do not cover, coordinates are left empty.
	randmsa --nseq N --len L [--seed S] [-o FILE]
		random RNA alignment for testing

Global flags:
	-d, --debug
		debug output
	--log-json
		log json objects instead of text
	--config FILE
		take settings from a yaml, toml or json file

Any flag can also be set in the environment as RNA3D_<FLAG>, with
dashes changed to underscores, for example RNA3D_MSA_DIR.
*/
package main
