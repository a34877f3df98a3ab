// Command wordcloud counts word frequencies in a text file, prints the most
// frequent words, and renders them as an HTML tag cloud.
//
// Subcommands:
//
//	analyze <file>     count, rank, and render one document
//	history            list, inspect, or clear recorded runs
//	config init        write a sample configuration file
//	config validate    load and check the active configuration
package main
