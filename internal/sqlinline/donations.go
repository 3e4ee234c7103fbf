package sqlinline

const QListDonationsByDonor = `--sql c04a70ea-e751-4119-b179-b4b0be4f6ced
select d.id, d.amount, d.currency, d.type, d.donor_id, d.dog_id, g.name,
       d.payment_status, coalesce(d.stripe_payment_id, ''), d.created_at
from donations d
left join dogs g on g.id = d.dog_id
where d.donor_id = $1::uuid
order by d.created_at desc;
`

const QListCompletedDonations = `--sql 85dfb2d0-8a87-4c12-a928-3024768e61d7
select amount, currency
from donations
where payment_status = 'completed';
`

const QExportDonations = `--sql 9d81c7f8-b01f-4d35-b9b1-a846f4f3dffb
select d.id, d.amount, d.currency, d.type, d.donor_id, coalesce(g.name, ''),
       d.payment_status, d.stripe_payment_id, d.created_at
from donations d
left join dogs g on g.id = d.dog_id
order by d.created_at asc;
`
